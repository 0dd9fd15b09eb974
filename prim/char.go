package prim

import (
	"fmt"
	"unicode/utf8"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeChar writes a Unicode scalar value as its 32-bit code point via the
// variable-length unsigned form.
func EncodeChar(w *wirebuf.Writer, v rune) {
	EncodeUvarint(w, uint64(v))
}

// DecodeChar reads a Unicode scalar value. Surrogate halves and values
// above utf8.MaxRune are rejected.
func DecodeChar(r *wirebuf.Reader) (rune, error) {
	v, err := DecodeUvarint(r)
	if err != nil {
		return 0, err
	}
	if v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, fmt.Errorf("%w: %d is not a valid unicode scalar value", errs.ErrTypeMismatch, v)
	}

	return rune(v), nil
}
