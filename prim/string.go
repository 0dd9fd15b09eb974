package prim

import (
	"unicode/utf8"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// EncodeString writes s as a short string (tag.ShortStringBase+len) when
// len(s) <= 40, otherwise as tag.LongString followed by a varint length.
func EncodeString(w *wirebuf.Writer, s string) {
	n := len(s)
	if n <= tag.ShortStringMaxLen {
		w.AppendByte(tag.ShortStringBase + byte(n))
	} else {
		w.AppendByte(tag.LongString)
		EncodeUvarint(w, uint64(n))
	}

	w.AppendBytes([]byte(s))
}

// DecodeString reads a string, validating that its bytes are well-formed
// UTF-8.
func DecodeString(r *wirebuf.Reader) (string, error) {
	t, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	var n int
	switch {
	case t == tag.LongString:
		v, err := DecodeUvarint(r)
		if err != nil {
			return "", err
		}

		n = int(v)
	default:
		length, ok := tag.IsShortString(t)
		if !ok {
			return "", errs.ErrInvalidTag
		}

		n = length
	}

	if err := r.CheckCount(n); err != nil {
		return "", err
	}

	buf, err := r.SplitOff(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", errs.ErrInvalidUTF8
	}

	return string(buf), nil
}
