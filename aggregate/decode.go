package aggregate

import (
	"fmt"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeReader reads encode-format struct/enum framing. Unlike
// EncodeWriter, which commits to a shape up front, EncodeReader's first
// call reads whichever tag is actually on the wire, so the caller (which
// knows the target type) can dispatch to the matching decode path.
type EncodeReader struct {
	r *wirebuf.Reader
}

// NewEncodeReader wraps r for encode-format aggregate framing.
func NewEncodeReader(r *wirebuf.Reader) *EncodeReader {
	return &EncodeReader{r: r}
}

// ReadTag reads the leading aggregate tag: one of tag.UnitStruct,
// tag.NamedStruct, tag.PositionalStruct, tag.UnitEnum, tag.NamedEnum, or
// tag.PositionalEnum.
func (d *EncodeReader) ReadTag() (tag.Tag, error) {
	return d.r.ReadByte()
}

// ReadVariantID reads an enum variant identifier. Call after ReadTag
// returns one of the three enum tags.
func (d *EncodeReader) ReadVariantID() (uint64, error) {
	id, _, err := tag.ReadMemberID(d.r)
	return id, err
}

// ReadPositionalCount reads a positional struct's or positional enum
// variant's declared member count.
func (d *EncodeReader) ReadPositionalCount() (int, error) {
	n, err := prim.DecodeUvarint(d.r)
	if err != nil {
		return 0, err
	}
	if err := d.r.CheckCount(int(n)); err != nil {
		return 0, err
	}

	return int(n), nil
}

// BeginNamedMembers returns a NamedDecoder for iterating a named struct's
// or named enum variant's member-id/value pairs.
func (d *EncodeReader) BeginNamedMembers() *NamedDecoder {
	return &NamedDecoder{r: d.r, seen: make(map[uint64]bool)}
}

// NamedDecoder iterates a named struct's or named enum variant's members.
type NamedDecoder struct {
	r    *wirebuf.Reader
	seen map[uint64]bool
}

// Next reads the next member identifier. done is true once the
// terminator is reached, at which point id is not meaningful and no more
// calls to Next or Skip should be made. Next rejects an identifier that
// already appeared earlier in this same aggregate instance with
// errs.ErrDuplicateMember, since a well-formed encoder never repeats one.
func (d *NamedDecoder) Next() (id uint64, done bool, err error) {
	id, done, err = tag.ReadMemberID(d.r)
	if err != nil || done {
		return id, done, err
	}
	if d.seen[id] {
		return id, false, fmt.Errorf("%w: identifier %d", errs.ErrDuplicateMember, id)
	}
	d.seen[id] = true

	return id, false, nil
}

// Skip consumes the current member's encoded value using the skip
// driver. Call this when the identifier returned by Next does not match
// any member the target type declares.
func (d *NamedDecoder) Skip() error {
	return tag.Skip(d.r)
}

// RequireAll checks that every identifier in required was observed by a
// prior call to Next, returning errs.ErrMissingMember naming the first
// absent one otherwise. Call after Next has returned done to validate a
// target type's required members were all present.
func (d *NamedDecoder) RequireAll(required ...uint64) error {
	for _, id := range required {
		if !d.seen[id] {
			return fmt.Errorf("%w: identifier %d", errs.ErrMissingMember, id)
		}
	}

	return nil
}

// MatchVariant requires id to be one of declared, returning
// errs.ErrUnknownVariant otherwise. Call after ReadVariantID with the
// target enum's full set of declared variant identifiers.
func MatchVariant(id uint64, declared ...uint64) error {
	for _, d := range declared {
		if d == id {
			return nil
		}
	}

	return fmt.Errorf("%w: variant %d", errs.ErrUnknownVariant, id)
}
