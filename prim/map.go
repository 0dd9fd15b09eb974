package prim

import (
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeMapHeader writes tag.Map followed by the varint entry count.
func EncodeMapHeader(w *wirebuf.Writer, n int) {
	w.AppendByte(tag.Map)
	EncodeUvarint(w, uint64(n))
}

// DecodeMapHeader reads a map's tag and declared entry count, checked
// against the reader's configured element limit.
func DecodeMapHeader(r *wirebuf.Reader) (int, error) {
	t, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if t != tag.Map {
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

// EncodeMap writes m as a map, calling encodeKey/encodeValue for each
// entry. Writer-defined ordering: callers that need deterministic output
// should iterate a pre-sorted key slice rather than ranging m directly.
func EncodeMap[K comparable, V any](w *wirebuf.Writer, m map[K]V, encodeKey func(*wirebuf.Writer, K), encodeValue func(*wirebuf.Writer, V)) {
	EncodeMapHeader(w, len(m))
	for k, v := range m {
		encodeKey(w, k)
		encodeValue(w, v)
	}
}

// DecodeMap reads a map, calling decodeKey/decodeValue for each declared
// entry. Each entry is wrapped in a nesting level so a map of aggregates
// or nested containers is subject to the depth limit.
func DecodeMap[K comparable, V any](r *wirebuf.Reader, decodeKey func(*wirebuf.Reader) (K, error), decodeValue func(*wirebuf.Reader) (V, error)) (map[K]V, error) {
	n, err := DecodeMapHeader(r)
	if err != nil {
		return nil, err
	}

	if err := r.EnterNested(); err != nil {
		return nil, err
	}
	defer r.ExitNested()

	m := make(map[K]V, n)
	for range n {
		k, err := decodeKey(r)
		if err != nil {
			return nil, err
		}

		v, err := decodeValue(r)
		if err != nil {
			return nil, err
		}

		m[k] = v
	}

	return m, nil
}
