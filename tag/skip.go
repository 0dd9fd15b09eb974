package tag

import (
	"fmt"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/wirebuf"
)

func errInvalidTag(t byte) error {
	return fmt.Errorf("%w: tag %d", errs.ErrInvalidTag, t)
}

// Skip consumes one encoded value starting at the reader's current
// position without knowing its schema. It is the forward-compatibility
// primitive that lets a decoder step over a member it does not recognize.
func Skip(r *wirebuf.Reader) error {
	t, err := r.ReadByte()
	if err != nil {
		return err
	}

	return skipAfterTag(r, t)
}

func skipAfterTag(r *wirebuf.Reader, t byte) error {
	if _, ok := IsShortInt(t); ok {
		return nil
	}
	if length, ok := IsShortString(t); ok {
		return r.Advance(length)
	}
	if count, ok := IsShortList(t); ok {
		return skipN(r, count)
	}

	switch t {
	case None, Zero, One:
		return nil
	case U8:
		return r.Advance(1)
	case U16:
		return r.Advance(2)
	case U32, Float32:
		return r.Advance(4)
	case U64, Float64:
		return r.Advance(8)
	case U128:
		return r.Advance(16)
	case Negate, Some:
		return skipNested(r)
	case LongString:
		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return r.Advance(int(n))
	case Binary:
		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return r.Advance(int(n))
	case LongList:
		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, int(n))
	case Tuple:
		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, int(n))
	case Map:
		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, 2*int(n))
	case UnitStruct, UnitEnum:
		return nil
	case NamedStruct:
		return skipNamedMembers(r)
	case NamedEnum:
		if err := skipMemberIdentifier(r); err != nil {
			return err
		}

		return skipNamedMembers(r)
	case PositionalStruct:
		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, int(n))
	case PositionalEnum:
		if err := skipMemberIdentifier(r); err != nil {
			return err
		}

		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, int(n))
	case CalendarDateTime, NaiveDateTime:
		return r.Advance(12)
	case CalendarDate:
		return r.Advance(8)
	case CalendarTime:
		return r.Advance(8)
	case Decimal:
		return r.Advance(20)
	case UUID:
		return r.Advance(16)
	case JSONNull:
		return nil
	case JSONBool:
		return skipNested(r)
	case JSONNumber:
		// Discriminator and value are each an ordinary encoded primitive
		// (ints use the variable-length form, floats a fixed tag), not a
		// raw fixed-width field, so both are skipped recursively.
		if err := skipNested(r); err != nil {
			return err
		}

		return skipNested(r)
	case JSONString:
		return skipNested(r)
	case JSONArray:
		inner, err := r.ReadByte()
		if err != nil {
			return err
		}
		if count, ok := IsShortList(inner); ok {
			return skipN(r, count)
		}
		if inner != LongList {
			return errInvalidTag(inner)
		}

		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, int(n))
	case JSONObject:
		inner, err := r.ReadByte()
		if err != nil {
			return err
		}
		if inner != Map {
			return errInvalidTag(inner)
		}

		n, err := skipReadCount(r)
		if err != nil {
			return err
		}

		return skipN(r, 2*int(n))
	default:
		return errInvalidTag(t)
	}
}

// skipNested enters a nesting level and recursively skips exactly one
// value, for tags whose payload is itself a single encoded value
// (negate marker, optional-some).
func skipNested(r *wirebuf.Reader) error {
	if err := r.EnterNested(); err != nil {
		return err
	}
	defer r.ExitNested()

	return Skip(r)
}

// skipN enters a nesting level and recursively skips n values.
func skipN(r *wirebuf.Reader, n int) error {
	if err := r.CheckCount(n); err != nil {
		return err
	}
	if err := r.EnterNested(); err != nil {
		return err
	}
	defer r.ExitNested()

	return skipNValues(r, n)
}

// skipNValues skips n values without its own nesting bookkeeping; used
// by skipN, which has already checked the count and entered a nesting
// level.
func skipNValues(r *wirebuf.Reader, n int) error {
	for range n {
		if err := Skip(r); err != nil {
			return err
		}
	}

	return nil
}

// skipReadCount reads a variable-length unsigned count using the same
// encoding as prim.DecodeUvarint, inlined here to avoid an import cycle
// with package prim (which itself imports tag for the tag table).
func skipReadCount(r *wirebuf.Reader) (uint64, error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	if v, ok := IsShortInt(t); ok {
		return v, nil
	}

	switch t {
	case U8:
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}

		return uint64(b) + 128, nil
	case U16:
		buf, err := r.SplitOff(2)
		if err != nil {
			return 0, err
		}

		return uint64(buf[0]) | uint64(buf[1])<<8, nil
	case U32:
		buf, err := r.SplitOff(4)
		if err != nil {
			return 0, err
		}

		var v uint32
		for i := 3; i >= 0; i-- {
			v = v<<8 | uint32(buf[i])
		}

		return uint64(v), nil
	case U64:
		buf, err := r.SplitOff(8)
		if err != nil {
			return 0, err
		}

		var v uint64
		for i := 7; i >= 0; i-- {
			v = v<<8 | uint64(buf[i])
		}

		return v, nil
	default:
		return 0, errInvalidTag(t)
	}
}

func skipMemberIdentifier(r *wirebuf.Reader) error {
	_, _, err := ReadMemberID(r)
	return err
}

func skipNamedMembers(r *wirebuf.Reader) error {
	if err := r.EnterNested(); err != nil {
		return err
	}
	defer r.ExitNested()

	for {
		_, done, err := ReadMemberID(r)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if err := Skip(r); err != nil {
			return err
		}
	}
}
