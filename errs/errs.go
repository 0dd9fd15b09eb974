// Package errs defines the sentinel errors returned by tagwire's encode and
// decode paths.
//
// Every exported error is a plain value created with errors.New so callers
// can compare with errors.Is. Call sites that need positional context (an
// offset, a tag byte, a member identifier) wrap the sentinel with
// fmt.Errorf("...: %w", errs.ErrX) rather than constructing a new error
// type, keeping errors.Is/errors.As working across the whole module.
package errs

import "errors"

// Decode errors.
var (
	// ErrShortBuffer is returned when the reader does not have enough
	// remaining bytes to satisfy the structure the current tag declares.
	ErrShortBuffer = errors.New("tagwire: short buffer")

	// ErrInvalidTag is returned when a byte does not name any defined tag
	// for the current decoding context.
	ErrInvalidTag = errors.New("tagwire: invalid tag")

	// ErrInvalidUTF8 is returned when a string payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("tagwire: invalid utf-8")

	// ErrIntegerOverflow is returned when a decoded integer does not fit
	// the target type's width.
	ErrIntegerOverflow = errors.New("tagwire: integer overflow")

	// ErrSignMismatch is returned when a negative encoded integer is
	// decoded into an unsigned target.
	ErrSignMismatch = errors.New("tagwire: sign mismatch")

	// ErrTypeMismatch is returned when a tag's type cannot be converted to
	// the requested target via the widening/narrowing matrix.
	ErrTypeMismatch = errors.New("tagwire: type mismatch")

	// ErrMissingMember is returned when a required aggregate member is
	// absent at the terminator.
	ErrMissingMember = errors.New("tagwire: missing member")

	// ErrDuplicateMember is returned when the same member identifier
	// appears twice within one aggregate instance.
	ErrDuplicateMember = errors.New("tagwire: duplicate member")

	// ErrUnknownVariant is returned when an enum variant identifier does
	// not match any declared variant.
	ErrUnknownVariant = errors.New("tagwire: unknown variant")

	// ErrFingerprintMismatch is returned when a pack-format structural
	// fingerprint disagrees with the target type's fingerprint.
	ErrFingerprintMismatch = errors.New("tagwire: fingerprint mismatch")

	// ErrDepthExceeded is returned when decoding would recurse past the
	// configured maximum nesting depth.
	ErrDepthExceeded = errors.New("tagwire: max recursion depth exceeded")

	// ErrCountExceeded is returned when a list, map, or tuple declares
	// more elements than the configured maximum element count.
	ErrCountExceeded = errors.New("tagwire: max element count exceeded")
)

// Generation-time / aggregate-framing errors reporting misuse the way the
// rest of the module reports it.
var (
	// ErrIdentifierZero is returned when a member or variant identifier
	// of 0 is supplied; identifier 0 is reserved as the end-of-members
	// terminator and is forbidden as a real identifier.
	ErrIdentifierZero = errors.New("tagwire: member identifier 0 is reserved")

	// ErrIdentifierCollision is returned when two members or variants of
	// the same aggregate hash (or were explicitly assigned) to the same
	// identifier.
	ErrIdentifierCollision = errors.New("tagwire: member identifier collision")

	// ErrNilReader is returned when a decode call is made against a nil
	// *wirebuf.Reader, in place of the nil-pointer panic that would
	// otherwise follow. There is no writer counterpart: encode functions
	// have no error return to carry one (see DESIGN.md), and a *Writer is
	// always produced by wirebuf.NewWriter, never user-constructed as nil.
	ErrNilReader = errors.New("tagwire: nil reader")

	// ErrArityMismatch is returned when a fixed-size array's decoded
	// element count does not match the expected size, and when a
	// positional aggregate is given more members than its declared count.
	ErrArityMismatch = errors.New("tagwire: array arity mismatch")
)
