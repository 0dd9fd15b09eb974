package prim

import (
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeListHeader writes a list's count tag: for n in the short range
// (0..=tag.ShortListMaxLen) the count is folded directly into the tag
// byte, otherwise tag.LongList is followed by a varint count.
func EncodeListHeader(w *wirebuf.Writer, n int) {
	if n >= 0 && n <= tag.ShortListMaxLen {
		w.AppendByte(tag.ShortListBase + byte(n))
		return
	}

	w.AppendByte(tag.LongList)
	EncodeUvarint(w, uint64(n))
}

// DecodeListHeader reads a list's count tag and returns its declared
// element count, checked against the reader's configured element limit.
func DecodeListHeader(r *wirebuf.Reader) (int, error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	var n int
	switch {
	case t == tag.LongList:
		v, err := DecodeUvarint(r)
		if err != nil {
			return 0, err
		}

		n = int(v)
	default:
		count, ok := tag.IsShortList(t)
		if !ok {
			return 0, errTypeMismatchTag(t)
		}

		n = count
	}

	if err := r.CheckCount(n); err != nil {
		return 0, err
	}

	return n, nil
}

// DecodeArrayHeader reads a list header and requires its count to equal
// arity exactly, returning ErrArityMismatch otherwise. Fixed-size array
// targets cannot absorb a count other than their declared size the way a
// slice can.
func DecodeArrayHeader(r *wirebuf.Reader, arity int) error {
	n, err := DecodeListHeader(r)
	if err != nil {
		return err
	}
	if n != arity {
		return errs.ErrArityMismatch
	}

	return nil
}

// EncodeList writes items as a list, calling encodeElem for each element
// in order.
func EncodeList[T any](w *wirebuf.Writer, items []T, encodeElem func(*wirebuf.Writer, T)) {
	EncodeListHeader(w, len(items))
	for _, item := range items {
		encodeElem(w, item)
	}
}

// DecodeList reads a list, calling decodeElem for each declared element.
// Each element decode is wrapped in a nesting level so a list of
// aggregates or nested containers is subject to the depth limit.
func DecodeList[T any](r *wirebuf.Reader, decodeElem func(*wirebuf.Reader) (T, error)) ([]T, error) {
	n, err := DecodeListHeader(r)
	if err != nil {
		return nil, err
	}

	if err := r.EnterNested(); err != nil {
		return nil, err
	}
	defer r.ExitNested()

	items := make([]T, n)
	for i := range n {
		v, err := decodeElem(r)
		if err != nil {
			return nil, err
		}

		items[i] = v
	}

	return items, nil
}
