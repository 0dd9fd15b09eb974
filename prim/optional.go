package prim

import (
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeNone writes the absent-optional marker.
func EncodeNone(w *wirebuf.Writer) {
	w.AppendByte(tag.None)
}

// EncodeSome writes the present-optional marker followed by encodeInner's
// output.
func EncodeSome(w *wirebuf.Writer, encodeInner func(*wirebuf.Writer)) {
	w.AppendByte(tag.Some)
	encodeInner(w)
}

// DecodeOptional reads an optional value and reports whether it was
// present. A bare value's tag (anything but tag.None/tag.Some) is also
// accepted as present: this is the decode side of the "T widens to
// optional T" rule, letting an optional field absorb data that was
// written without the wrapper.
func DecodeOptional(r *wirebuf.Reader, decodeInner func(*wirebuf.Reader) error) (present bool, err error) {
	t, ok := r.PeekByte()
	if !ok {
		return false, errs.ErrShortBuffer
	}

	switch t {
	case tag.None:
		if _, err := r.ReadByte(); err != nil {
			return false, err
		}

		return false, nil
	case tag.Some:
		if _, err := r.ReadByte(); err != nil {
			return false, err
		}
		if err := r.EnterNested(); err != nil {
			return false, err
		}
		defer r.ExitNested()

		if err := decodeInner(r); err != nil {
			return false, err
		}

		return true, nil
	default:
		if err := decodeInner(r); err != nil {
			return false, err
		}

		return true, nil
	}
}
