package prim

import (
	"fmt"
	"math"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// Uint128 is a 128-bit unsigned integer represented as two 64-bit words,
// since Go has no native 128-bit integer type. The Decimal domain type
// carries a signed 128-bit mantissa built on its Int128 counterpart.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is the signed counterpart of Uint128, stored as the two's
// complement bit pattern split across Lo/Hi.
type Int128 struct {
	Lo, Hi uint64
}

// Negative reports whether the 128-bit two's complement value is negative.
func (v Int128) Negative() bool { return v.Hi>>63 == 1 }

func overflowf(target string) error {
	return fmt.Errorf("%w: value does not fit %s", errs.ErrIntegerOverflow, target)
}

// --- unsigned, native widths ---

// EncodeU8 writes an 8-bit unsigned integer using the smallest covering
// width.
func EncodeU8(w *wirebuf.Writer, v uint8) { EncodeUvarint(w, uint64(v)) }

// EncodeU16 writes a 16-bit unsigned integer.
func EncodeU16(w *wirebuf.Writer, v uint16) { EncodeUvarint(w, uint64(v)) }

// EncodeU32 writes a 32-bit unsigned integer.
func EncodeU32(w *wirebuf.Writer, v uint32) { EncodeUvarint(w, uint64(v)) }

// EncodeU64 writes a 64-bit unsigned integer.
func EncodeU64(w *wirebuf.Writer, v uint64) { EncodeUvarint(w, v) }

// EncodeU128 writes a 128-bit unsigned integer.
func EncodeU128(w *wirebuf.Writer, v Uint128) { EncodeUint128(w, v.Hi, v.Lo) }

// DecodeU8 reads an unsigned integer and narrows it to uint8. It rejects
// the negate marker and any magnitude above math.MaxUint8.
func DecodeU8(r *wirebuf.Reader) (uint8, error) {
	hi, lo, err := DecodeUint128(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 || lo > math.MaxUint8 {
		return 0, overflowf("u8")
	}

	return uint8(lo), nil
}

// DecodeU16 reads an unsigned integer and narrows it to uint16.
func DecodeU16(r *wirebuf.Reader) (uint16, error) {
	hi, lo, err := DecodeUint128(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 || lo > math.MaxUint16 {
		return 0, overflowf("u16")
	}

	return uint16(lo), nil
}

// DecodeU32 reads an unsigned integer and narrows it to uint32.
func DecodeU32(r *wirebuf.Reader) (uint32, error) {
	hi, lo, err := DecodeUint128(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 || lo > math.MaxUint32 {
		return 0, overflowf("u32")
	}

	return uint32(lo), nil
}

// DecodeU64 reads an unsigned integer into uint64 (widest native width;
// no narrowing possible beyond the full 128-bit range).
func DecodeU64(r *wirebuf.Reader) (uint64, error) {
	hi, lo, err := DecodeUint128(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, overflowf("u64")
	}

	return lo, nil
}

// DecodeU128 reads an unsigned integer into the full 128-bit range.
func DecodeU128(r *wirebuf.Reader) (Uint128, error) {
	hi, lo, err := DecodeUint128(r)
	if err != nil {
		return Uint128{}, err
	}

	return Uint128{Lo: lo, Hi: hi}, nil
}

// --- signed, native widths ---
//
// Encoding: non-negative v writes as the unsigned form of v. Negative v
// writes the negate-marker tag followed by the unsigned form of ^v (the
// bitwise complement, computed in the target width).
// Decoding range-checks the magnitude against the target's signed range
// (for a negated value, the complement must not exceed the target's
// maximum positive value), then (for negated values) flips the bits back.

// EncodeI8 writes an 8-bit signed integer.
func EncodeI8(w *wirebuf.Writer, v int8) {
	if v >= 0 {
		EncodeUvarint(w, uint64(v))
		return
	}

	w.AppendByte(tag.Negate)
	EncodeUvarint(w, uint64(^uint8(v)))
}

// EncodeI16 writes a 16-bit signed integer.
func EncodeI16(w *wirebuf.Writer, v int16) {
	if v >= 0 {
		EncodeUvarint(w, uint64(v))
		return
	}

	w.AppendByte(tag.Negate)
	EncodeUvarint(w, uint64(^uint16(v)))
}

// EncodeI32 writes a 32-bit signed integer.
func EncodeI32(w *wirebuf.Writer, v int32) {
	if v >= 0 {
		EncodeUvarint(w, uint64(v))
		return
	}

	w.AppendByte(tag.Negate)
	EncodeUvarint(w, uint64(^uint32(v)))
}

// EncodeI64 writes a 64-bit signed integer.
func EncodeI64(w *wirebuf.Writer, v int64) {
	if v >= 0 {
		EncodeUvarint(w, uint64(v))
		return
	}

	w.AppendByte(tag.Negate)
	EncodeUvarint(w, ^uint64(v))
}

// DecodeI8 reads an integer (either form) and narrows it to int8.
func DecodeI8(r *wirebuf.Reader) (int8, error) {
	hi, lo, neg, err := decodeMagnitudeSigned(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, overflowf("i8")
	}
	if neg {
		if lo > math.MaxInt8 {
			return 0, overflowf("i8")
		}

		return int8(^uint8(lo)), nil
	}
	if lo > math.MaxInt8 {
		return 0, overflowf("i8")
	}

	return int8(lo), nil
}

// DecodeI16 reads an integer (either form) and narrows it to int16.
func DecodeI16(r *wirebuf.Reader) (int16, error) {
	hi, lo, neg, err := decodeMagnitudeSigned(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, overflowf("i16")
	}
	if neg {
		if lo > math.MaxInt16 {
			return 0, overflowf("i16")
		}

		return int16(^uint16(lo)), nil
	}
	if lo > math.MaxInt16 {
		return 0, overflowf("i16")
	}

	return int16(lo), nil
}

// DecodeI32 reads an integer (either form) and narrows it to int32.
func DecodeI32(r *wirebuf.Reader) (int32, error) {
	hi, lo, neg, err := decodeMagnitudeSigned(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, overflowf("i32")
	}
	if neg {
		if lo > math.MaxInt32 {
			return 0, overflowf("i32")
		}

		return int32(^uint32(lo)), nil
	}
	if lo > math.MaxInt32 {
		return 0, overflowf("i32")
	}

	return int32(lo), nil
}

// DecodeI64 reads an integer (either form) and narrows it to int64.
func DecodeI64(r *wirebuf.Reader) (int64, error) {
	hi, lo, neg, err := decodeMagnitudeSigned(r)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, overflowf("i64")
	}
	if neg {
		if lo > math.MaxInt64 {
			return 0, overflowf("i64")
		}

		return int64(^lo), nil
	}
	if lo > math.MaxInt64 {
		return 0, overflowf("i64")
	}

	return int64(lo), nil
}

// DecodeI128 reads an integer (either form) into the full 128-bit range.
func DecodeI128(r *wirebuf.Reader) (Int128, error) {
	hi, lo, neg, err := decodeMagnitudeSigned(r)
	if err != nil {
		return Int128{}, err
	}
	if hi>>63 == 1 {
		return Int128{}, overflowf("i128")
	}
	if !neg {
		return Int128{Lo: lo, Hi: hi}, nil
	}

	// ^v across the full 128-bit width: complement both words.
	return Int128{Lo: ^lo, Hi: ^hi}, nil
}
