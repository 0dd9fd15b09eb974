// Package tagwire implements a self-describing tagged binary serialization
// format with two wire variants: an encode format that carries per-member
// identifiers and survives schema evolution, and a pack format that drops
// identifiers and terminators in favor of positional layout guarded by a
// structural fingerprint.
//
// This package provides convenience entry points around the lower-level
// wirebuf (buffer cursor), tag (tag table, member identifiers, skip
// driver), prim (primitive codecs), ident (identifier derivation), and
// aggregate (struct/enum framing) packages. Direct primitive codec calls
// through those packages never include a container magic; the
// conveniences here add it so a reader can distinguish the two formats
// without being told in advance which one it holds.
package tagwire

import (
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/wirebuf"
)

// Format identifies which of the two wire variants a container uses.
type Format int

const (
	// EncodeFormat is the schema-evolving, self-describing variant.
	EncodeFormat Format = iota
	// PackFormat is the positional, fingerprint-guarded variant.
	PackFormat
)

// EncodeMagic is the two-byte little-endian magic prepended to an
// encode-format container: 0x5A, 0xA5.
var EncodeMagic = [2]byte{0x5A, 0xA5}

// PackMagic is the two-byte little-endian magic prepended to a
// pack-format container: 0xDA, 0xDA.
var PackMagic = [2]byte{0xDA, 0xDA}

// WriteContainerHeader prepends the two-byte magic identifying format to
// w. Callers that hand raw buffers between encode/decode calls of the
// same known format (primitive or aggregate calls directly against
// wirebuf/prim/aggregate) never need this; it exists only for top-level
// containers whose format must be self-describing on the wire.
func WriteContainerHeader(w *wirebuf.Writer, format Format) {
	switch format {
	case PackFormat:
		w.AppendBytes(PackMagic[:])
	default:
		w.AppendBytes(EncodeMagic[:])
	}
}

// ReadContainerHeader consumes the two-byte magic from r and reports
// which format it names. It returns errs.ErrInvalidTag if the leading
// bytes match neither EncodeMagic nor PackMagic.
func ReadContainerHeader(r *wirebuf.Reader) (Format, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	b1, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case b0 == EncodeMagic[0] && b1 == EncodeMagic[1]:
		return EncodeFormat, nil
	case b0 == PackMagic[0] && b1 == PackMagic[1]:
		return PackFormat, nil
	default:
		return 0, errs.ErrInvalidTag
	}
}

// NewWriter returns a pooled wirebuf.Writer ready for a fresh encode.
// Callers must call Release when done to return the buffer to the pool.
func NewWriter() *wirebuf.Writer {
	return wirebuf.NewWriter()
}

// NewReader returns a wirebuf.Reader over data using the default resource
// limits.
func NewReader(data []byte) *wirebuf.Reader {
	return wirebuf.NewReader(data)
}
