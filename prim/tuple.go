package prim

import (
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeTupleHeader writes tag.Tuple followed by the varint arity.
func EncodeTupleHeader(w *wirebuf.Writer, arity int) {
	w.AppendByte(tag.Tuple)
	EncodeUvarint(w, uint64(arity))
}

// DecodeTupleHeader reads a tuple's tag and declared arity, checked
// against the reader's configured element limit.
func DecodeTupleHeader(r *wirebuf.Reader) (int, error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if t != tag.Tuple {
		return 0, errTypeMismatchTag(t)
	}

	v, err := DecodeUvarint(r)
	if err != nil {
		return 0, err
	}

	n := int(v)
	if err := r.CheckCount(n); err != nil {
		return 0, err
	}

	return n, nil
}
