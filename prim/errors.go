package prim

import (
	"fmt"

	"github.com/arval-dev/tagwire/errs"
)

// errTypeMismatchTag wraps ErrTypeMismatch with the offending tag byte,
// used by decoders that expect one specific tag (Binary, Tuple, Map, ...)
// rather than a range.
func errTypeMismatchTag(t byte) error {
	return fmt.Errorf("%w: unexpected tag %d", errs.ErrTypeMismatch, t)
}
