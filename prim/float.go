package prim

import (
	"math"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeF32 writes a 32-bit IEEE-754 float behind tag.Float32.
func EncodeF32(w *wirebuf.Writer, v float32) {
	w.AppendByte(tag.Float32)
	putUint32LE(w.Reserve(4), math.Float32bits(v))
}

// EncodeF64 writes a 64-bit IEEE-754 float behind tag.Float64.
func EncodeF64(w *wirebuf.Writer, v float64) {
	w.AppendByte(tag.Float64)
	putUint64LE(w.Reserve(8), math.Float64bits(v))
}

// DecodeF32 reads a 32-bit float target. A 64-bit encoded value may be
// narrowed into this target (precision loss tolerated); a 32-bit encoded
// value decodes directly.
func DecodeF32(r *wirebuf.Reader) (float32, error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch t {
	case tag.Float32:
		buf, err := r.SplitOff(4)
		if err != nil {
			return 0, err
		}

		return math.Float32frombits(getUint32LE(buf)), nil
	case tag.Float64:
		buf, err := r.SplitOff(8)
		if err != nil {
			return 0, err
		}

		return float32(math.Float64frombits(getUint64LE(buf))), nil
	default:
		return 0, errs.ErrTypeMismatch
	}
}

// DecodeF64 reads a 64-bit float. The reverse widening (a 32-bit encoded
// value into an f64 target) is rejected: only an exact tag.Float64 is
// accepted.
func DecodeF64(r *wirebuf.Reader) (float64, error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if t != tag.Float64 {
		return 0, errs.ErrTypeMismatch
	}

	buf, err := r.SplitOff(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(getUint64LE(buf)), nil
}
