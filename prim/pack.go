package prim

import (
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// Pack-format variants of the primitive codec. Every rule from the encode
// format is reused unchanged except two: u8 is written as a single raw
// byte with no tag (u8 carries no range ambiguity, so the tag byte is
// pure overhead in dense records), and the zero value of floats and a
// few domain types collapses to the shared none-tag.

// PackU8 writes an 8-bit unsigned integer as one raw byte, no tag.
func PackU8(w *wirebuf.Writer, v uint8) {
	w.AppendByte(v)
}

// UnpackU8 reads a raw byte written by PackU8.
func UnpackU8(r *wirebuf.Reader) (uint8, error) {
	return r.ReadByte()
}

// PackF32 writes a 32-bit float, collapsing the zero value to tag.None.
func PackF32(w *wirebuf.Writer, v float32) {
	if v == 0 {
		w.AppendByte(tag.None)
		return
	}

	EncodeF32(w, v)
}

// UnpackF32 reads a value written by PackF32.
func UnpackF32(r *wirebuf.Reader) (float32, error) {
	if t, ok := r.PeekByte(); ok && t == tag.None {
		r.ReadByte() //nolint:errcheck // PeekByte already confirmed a byte is present

		return 0, nil
	}

	return DecodeF32(r)
}

// PackF64 writes a 64-bit float, collapsing the zero value to tag.None.
func PackF64(w *wirebuf.Writer, v float64) {
	if v == 0 {
		w.AppendByte(tag.None)
		return
	}

	EncodeF64(w, v)
}

// UnpackF64 reads a value written by PackF64.
func UnpackF64(r *wirebuf.Reader) (float64, error) {
	if t, ok := r.PeekByte(); ok && t == tag.None {
		r.ReadByte() //nolint:errcheck

		return 0, nil
	}

	return DecodeF64(r)
}

// PackDateTime writes a calendar date-time, collapsing its zero value
// (Sec == 0 && Nsec == 0, the Unix epoch) to tag.None.
func PackDateTime(w *wirebuf.Writer, v DateTime) {
	if v == (DateTime{}) {
		w.AppendByte(tag.None)
		return
	}

	EncodeDateTime(w, v)
}

// UnpackDateTime reads a value written by PackDateTime.
func UnpackDateTime(r *wirebuf.Reader) (DateTime, error) {
	if t, ok := r.PeekByte(); ok && t == tag.None {
		r.ReadByte() //nolint:errcheck

		return DateTime{}, nil
	}

	return DecodeDateTime(r)
}

// PackNaiveDateTime writes a naive calendar date-time, collapsing its
// zero value to tag.None.
func PackNaiveDateTime(w *wirebuf.Writer, v DateTime) {
	if v == (DateTime{}) {
		w.AppendByte(tag.None)
		return
	}

	EncodeNaiveDateTime(w, v)
}

// UnpackNaiveDateTime reads a value written by PackNaiveDateTime.
func UnpackNaiveDateTime(r *wirebuf.Reader) (DateTime, error) {
	if t, ok := r.PeekByte(); ok && t == tag.None {
		r.ReadByte() //nolint:errcheck

		return DateTime{}, nil
	}

	return DecodeNaiveDateTime(r)
}

// PackUUID writes a 128-bit identifier, collapsing the all-zero value to
// tag.None.
func PackUUID(w *wirebuf.Writer, v UUID) {
	if v == (UUID{}) {
		w.AppendByte(tag.None)
		return
	}

	EncodeUUID(w, v)
}

// UnpackUUID reads a value written by PackUUID.
func UnpackUUID(r *wirebuf.Reader) (UUID, error) {
	if t, ok := r.PeekByte(); ok && t == tag.None {
		r.ReadByte() //nolint:errcheck

		return UUID{}, nil
	}

	return DecodeUUID(r)
}
