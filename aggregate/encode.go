// Package aggregate frames struct and enum values around member-by-member
// codec calls, in both wire formats: the schema-evolving encode format
// (EncodeWriter/EncodeReader) and the positional pack format
// (PackWriter/PackReader). A (future, out-of-scope) code generator would
// call these member by member for each field of a user-defined type; this
// package implements the framing and leaves the per-field dispatch to the
// caller.
package aggregate

import (
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/ident"
	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeWriter frames a struct or enum value in the encode format.
type EncodeWriter struct {
	w *wirebuf.Writer
}

// NewEncodeWriter wraps w for encode-format aggregate framing.
func NewEncodeWriter(w *wirebuf.Writer) *EncodeWriter {
	return &EncodeWriter{w: w}
}

// WriteUnitStruct writes a unit struct: its tag alone.
func (e *EncodeWriter) WriteUnitStruct() {
	e.w.AppendByte(tag.UnitStruct)
}

// BeginNamedStruct writes the named-struct tag and returns a NamedEncoder
// for writing its members and terminator.
func (e *EncodeWriter) BeginNamedStruct() *NamedEncoder {
	e.w.AppendByte(tag.NamedStruct)
	return newNamedEncoder(e.w)
}

// BeginPositionalStruct writes the positional-struct tag and member count
// n, returning a PositionalEncoder for writing the n members in
// declaration order.
func (e *EncodeWriter) BeginPositionalStruct(n int) *PositionalEncoder {
	e.w.AppendByte(tag.PositionalStruct)
	prim.EncodeUvarint(e.w, uint64(n))

	return &PositionalEncoder{w: e.w, remaining: n}
}

// WriteUnitEnum writes a unit enum variant: its tag, then the variant
// identifier.
func (e *EncodeWriter) WriteUnitEnum(variantID uint64) {
	e.w.AppendByte(tag.UnitEnum)
	tag.WriteMemberID(e.w, variantID)
}

// BeginNamedEnum writes the named-enum tag and variant identifier, then
// returns a NamedEncoder for the variant's members and terminator.
func (e *EncodeWriter) BeginNamedEnum(variantID uint64) *NamedEncoder {
	e.w.AppendByte(tag.NamedEnum)
	tag.WriteMemberID(e.w, variantID)

	return newNamedEncoder(e.w)
}

// BeginPositionalEnum writes the positional-enum tag, variant identifier,
// and member count n, returning a PositionalEncoder for the n members.
func (e *EncodeWriter) BeginPositionalEnum(variantID uint64, n int) *PositionalEncoder {
	e.w.AppendByte(tag.PositionalEnum)
	tag.WriteMemberID(e.w, variantID)
	prim.EncodeUvarint(e.w, uint64(n))

	return &PositionalEncoder{w: e.w, remaining: n}
}

// NamedEncoder writes a named struct's or named enum variant's members:
// compact member-identifier, then the member's encoded value, repeated,
// then the terminator. It tracks identifiers with an ident.Tracker so two
// members resolving to the same identifier are caught at generation time
// rather than silently producing an undecodable value.
type NamedEncoder struct {
	w       *wirebuf.Writer
	tracker *ident.Tracker
	ended   bool
}

func newNamedEncoder(w *wirebuf.Writer) *NamedEncoder {
	return &NamedEncoder{w: w, tracker: ident.NewTracker()}
}

// WriteMember writes one member: id, then whatever encode appends to the
// writer. name is used only for collision diagnostics (two different
// member names that hash to the same id).
//
// Per the emission rules, callers skip this call entirely for: an
// optional member whose value is none, a "skip-if-default" member equal
// to its type's default, or a "skip-encode" member.
func (e *NamedEncoder) WriteMember(id uint64, name string, encode func(*wirebuf.Writer)) error {
	if err := e.tracker.Track(name, id); err != nil {
		return err
	}

	tag.WriteMemberID(e.w, id)
	encode(e.w)

	return nil
}

// End writes the 0x00 terminator. It must be called exactly once, after
// every emitted member; calling it twice is a caller bug and panics,
// matching how the rest of this codec treats post-finish misuse.
func (e *NamedEncoder) End() {
	if e.ended {
		panic("aggregate: End called twice on the same NamedEncoder")
	}

	e.w.AppendByte(tag.MemberTerminator)
	e.ended = true
}

// PositionalEncoder writes a positional struct's or positional enum
// variant's members in declaration order, with no per-member identifier
// or terminator — the count was already written by BeginPositionalStruct
// / BeginPositionalEnum.
type PositionalEncoder struct {
	w         *wirebuf.Writer
	remaining int
}

// WriteMember writes the next member's encoded value. It returns
// errs.ErrArityMismatch if called more times than the declared count.
func (e *PositionalEncoder) WriteMember(encode func(*wirebuf.Writer)) error {
	if e.remaining <= 0 {
		return errs.ErrArityMismatch
	}

	encode(e.w)
	e.remaining--

	return nil
}
