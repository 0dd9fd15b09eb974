// Package prim implements the primitive codec: encode and decode for
// booleans, every integer width, both floating-point widths, characters,
// strings, byte blobs, optional values, lists, maps, tuples, and the
// domain-type tags (calendar, decimal, uuid/ulid, dynamic JSON). The skip
// driver lives in package tag (tag.Skip).
//
// Every function takes a *wirebuf.Writer or *wirebuf.Reader directly; there
// is no intermediate Value type. This mirrors the teacher repo's per-kind
// encoder/decoder split (encoding.NumericRawEncoder, encoding.VarStringEncoder,
// ...) rather than a single reflective codec.
package prim

import (
	"fmt"

	"github.com/arval-dev/tagwire/endian"
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeUvarint writes v using the variable-length unsigned encoding:
// direct byte for v<=127, otherwise a width tag followed by the
// raw little-endian bytes of the smallest width that covers v. This is the
// general entry point used for list/map/tuple counts, string/blob lengths,
// and plain unsigned integer values.
func EncodeUvarint(w *wirebuf.Writer, v uint64) {
	EncodeUint128(w, 0, v)
}

// EncodeUint128 writes the 128-bit unsigned value (hi<<64 | lo) using the
// smallest covering width. Used directly by EncodeU128; EncodeUvarint is
// the hi==0 special case. Decimal mantissas do not use it: EncodeDecimal
// writes them as 16 raw bytes.
func EncodeUint128(w *wirebuf.Writer, hi, lo uint64) {
	switch {
	case hi == 0 && lo <= tag.SmallIntMax:
		w.AppendByte(tag.SmallIntBase + byte(lo))
	case hi == 0 && lo < 384:
		w.AppendByte(tag.U8)
		w.AppendByte(byte(lo - 128))
	case hi == 0 && lo <= 0xFFFF:
		w.AppendByte(tag.U16)
		putUint16LE(w.Reserve(2), uint16(lo))
	case hi == 0 && lo <= 0xFFFFFFFF:
		w.AppendByte(tag.U32)
		putUint32LE(w.Reserve(4), uint32(lo))
	case hi == 0:
		w.AppendByte(tag.U64)
		putUint64LE(w.Reserve(8), lo)
	default:
		w.AppendByte(tag.U128)
		buf := w.Reserve(16)
		putUint64LE(buf[0:8], lo)
		putUint64LE(buf[8:16], hi)
	}
}

// UvarintLen returns the number of bytes EncodeUvarint(w, v) would write,
// without writing anything, for callers that need to size a buffer ahead
// of time.
func UvarintLen(v uint64) int {
	switch {
	case v <= tag.SmallIntMax:
		return 1
	case v < 384:
		return 2
	case v <= 0xFFFF:
		return 3
	case v <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// DecodeUvarint reads a variable-length unsigned integer and requires it to
// fit in 64 bits; a U128 tag whose high word is nonzero is reported as
// ErrIntegerOverflow.
func DecodeUvarint(r *wirebuf.Reader) (uint64, error) {
	hi, lo, err := DecodeUint128(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, fmt.Errorf("%w: value exceeds 64 bits", errs.ErrIntegerOverflow)
	}

	return lo, nil
}

// DecodeUint128 reads a variable-length unsigned integer up to the full
// 128-bit range, returning it as (hi, lo) with value == hi<<64 | lo.
// It rejects the negate marker; callers decoding into a signed target
// should use decodeMagnitudeSigned instead.
func DecodeUint128(r *wirebuf.Reader) (hi, lo uint64, err error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}

	return decodeUnsignedMagnitude(r, t)
}

// decodeUnsignedMagnitude decodes the payload that follows an
// already-consumed tag byte t, interpreting it as an unsigned magnitude.
// It is shared by DecodeUint128 (top-level unsigned decode) and the signed
// decode path (after consuming an optional negate marker).
func decodeUnsignedMagnitude(r *wirebuf.Reader, t byte) (hi, lo uint64, err error) {
	if v, ok := tag.IsShortInt(t); ok {
		return 0, v, nil
	}

	switch t {
	case tag.U8:
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, err
		}

		return 0, uint64(b) + 128, nil
	case tag.U16:
		buf, err := r.SplitOff(2)
		if err != nil {
			return 0, 0, err
		}

		return 0, uint64(getUint16LE(buf)), nil
	case tag.U32:
		buf, err := r.SplitOff(4)
		if err != nil {
			return 0, 0, err
		}

		return 0, uint64(getUint32LE(buf)), nil
	case tag.U64:
		buf, err := r.SplitOff(8)
		if err != nil {
			return 0, 0, err
		}

		return 0, getUint64LE(buf), nil
	case tag.U128:
		buf, err := r.SplitOff(16)
		if err != nil {
			return 0, 0, err
		}

		return getUint64LE(buf[8:16]), getUint64LE(buf[0:8]), nil
	case tag.Negate:
		return 0, 0, fmt.Errorf("%w: unexpected negate marker", errs.ErrSignMismatch)
	default:
		return 0, 0, fmt.Errorf("%w: tag %d is not an integer tag", errs.ErrInvalidTag, t)
	}
}

// decodeMagnitudeSigned decodes a value that may be preceded by the negate
// marker, returning the raw 128-bit magnitude and whether it was negated.
// The magnitude for a negative value is the bitwise complement of the
// original value.
func decodeMagnitudeSigned(r *wirebuf.Reader) (hi, lo uint64, negative bool, err error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, 0, false, err
	}

	if t == tag.Negate {
		inner, err := r.ReadByte()
		if err != nil {
			return 0, 0, false, err
		}

		hi, lo, err = decodeUnsignedMagnitude(r, inner)

		return hi, lo, true, err
	}

	hi, lo, err = decodeUnsignedMagnitude(r, t)

	return hi, lo, false, err
}

// wireEndian is the byte order every fixed-width field on the wire uses.
// The format is little-endian only; there is no big-endian wire variant
// to select between, so this just names the teacher's endian.EndianEngine
// abstraction instead of hand-rolling shift/mask byte packing.
var wireEndian = endian.GetLittleEndianEngine()

func putUint16LE(b []byte, v uint16) { wireEndian.PutUint16(b, v) }
func putUint32LE(b []byte, v uint32) { wireEndian.PutUint32(b, v) }
func putUint64LE(b []byte, v uint64) { wireEndian.PutUint64(b, v) }

func getUint16LE(b []byte) uint16 { return wireEndian.Uint16(b) }
func getUint32LE(b []byte) uint32 { return wireEndian.Uint32(b) }
func getUint64LE(b []byte) uint64 { return wireEndian.Uint64(b) }
