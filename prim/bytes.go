package prim

import (
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeBytes writes a byte blob as tag.Binary, a varint length, then the
// raw bytes.
func EncodeBytes(w *wirebuf.Writer, data []byte) {
	w.AppendByte(tag.Binary)
	EncodeUvarint(w, uint64(len(data)))
	w.AppendBytes(data)
}

// DecodeBytes reads a byte blob. The returned slice aliases the reader's
// underlying data (zero-copy); callers that need to retain it beyond the
// reader's lifetime must copy it.
func DecodeBytes(r *wirebuf.Reader) ([]byte, error) {
	t, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if t != tag.Binary {
		return nil, errTypeMismatchTag(t)
	}

	n, err := DecodeUvarint(r)
	if err != nil {
		return nil, err
	}
	if err := r.CheckCount(int(n)); err != nil {
		return nil, err
	}

	return r.SplitOff(int(n))
}
