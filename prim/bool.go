package prim

import (
	"fmt"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeBool writes false as tag.Zero and true as tag.One.
func EncodeBool(w *wirebuf.Writer, v bool) {
	if v {
		EncodeU8(w, 1)
		return
	}

	EncodeU8(w, 0)
}

// DecodeBool reads a boolean. Any encoding that decodes to the unsigned
// integer 0 yields false, 1 yields true; any other integer value is
// ErrTypeMismatch.
func DecodeBool(r *wirebuf.Reader) (bool, error) {
	v, err := DecodeU64(r)
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d is not a valid boolean", errs.ErrTypeMismatch, v)
	}
}
