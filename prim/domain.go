package prim

import (
	"time"

	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
)

// DateTime is a calendar date-time: signed seconds since the Unix epoch
// plus a nanosecond fraction. It carries no timezone.
type DateTime struct {
	Sec  int64
	Nsec int32
}

// DateTimeFromTime converts t to a DateTime, discarding its location.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTime{Sec: t.Unix(), Nsec: int32(t.Nanosecond())}
}

// Time reconstructs a UTC time.Time from d.
func (d DateTime) Time() time.Time {
	return time.Unix(d.Sec, int64(d.Nsec)).UTC()
}

// Date is a calendar date: signed days since 1970-01-01.
type Date struct {
	Days int64
}

// DateFromTime truncates t to a Date, counting whole days since epoch in
// t's own location.
func DateFromTime(t time.Time) Date {
	year, month, day := t.Date()
	epoch := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return Date{Days: epoch.Unix() / 86400}
}

// Time reconstructs midnight UTC on d's date.
func (d Date) Time() time.Time {
	return time.Unix(d.Days*86400, 0).UTC()
}

// TimeOfDay is a calendar time-of-day: seconds since midnight plus a
// nanosecond fraction. Both fields are unsigned; TimeOfDay carries no
// date or timezone.
type TimeOfDay struct {
	Sec  uint32
	Nsec uint32
}

// TimeOfDayFromTime extracts the time-of-day portion of t.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return TimeOfDay{Sec: uint32(t.Unix() - midnight.Unix()), Nsec: uint32(t.Nanosecond())}
}

// Decimal is a fixed-precision decimal number: a signed 128-bit mantissa
// and a 32-bit scale (the mantissa's value divided by 10^Scale).
type Decimal struct {
	Mantissa Int128
	Scale    int32
}

// UUID is a 128-bit identifier shared by the uuid and ulid domain types,
// stored as its 16 raw bytes.
type UUID [16]byte

// Domain-type tags carry fixed-width raw payloads rather than the
// variable-length integer encoding prim uses elsewhere — the same way
// Float32/Float64 are fixed 4/8 raw bytes. This keeps every domain-type
// payload size known ahead of time, which the skip driver relies on.

// EncodeDateTime writes a calendar date-time: 8 raw bytes of seconds,
// then 4 raw bytes of nanoseconds, both little-endian.
func EncodeDateTime(w *wirebuf.Writer, v DateTime) {
	w.AppendByte(tag.CalendarDateTime)
	putUint64LE(w.Reserve(8), uint64(v.Sec))
	putUint32LE(w.Reserve(4), uint32(v.Nsec))
}

// DecodeDateTime reads a calendar date-time.
func DecodeDateTime(r *wirebuf.Reader) (DateTime, error) {
	if err := expectTag(r, tag.CalendarDateTime); err != nil {
		return DateTime{}, err
	}

	return decodeDateTimeBody(r)
}

// EncodeNaiveDateTime writes a calendar date-time with no implied
// timezone, using the naive-date-time tag instead of CalendarDateTime.
func EncodeNaiveDateTime(w *wirebuf.Writer, v DateTime) {
	w.AppendByte(tag.NaiveDateTime)
	putUint64LE(w.Reserve(8), uint64(v.Sec))
	putUint32LE(w.Reserve(4), uint32(v.Nsec))
}

// DecodeNaiveDateTime reads a naive calendar date-time.
func DecodeNaiveDateTime(r *wirebuf.Reader) (DateTime, error) {
	if err := expectTag(r, tag.NaiveDateTime); err != nil {
		return DateTime{}, err
	}

	return decodeDateTimeBody(r)
}

func decodeDateTimeBody(r *wirebuf.Reader) (DateTime, error) {
	secBuf, err := r.SplitOff(8)
	if err != nil {
		return DateTime{}, err
	}

	nsecBuf, err := r.SplitOff(4)
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{Sec: int64(getUint64LE(secBuf)), Nsec: int32(getUint32LE(nsecBuf))}, nil
}

// EncodeDate writes a calendar date as 8 raw little-endian bytes.
func EncodeDate(w *wirebuf.Writer, v Date) {
	w.AppendByte(tag.CalendarDate)
	putUint64LE(w.Reserve(8), uint64(v.Days))
}

// DecodeDate reads a calendar date.
func DecodeDate(r *wirebuf.Reader) (Date, error) {
	if err := expectTag(r, tag.CalendarDate); err != nil {
		return Date{}, err
	}

	buf, err := r.SplitOff(8)
	if err != nil {
		return Date{}, err
	}

	return Date{Days: int64(getUint64LE(buf))}, nil
}

// EncodeTimeOfDay writes a calendar time-of-day as two 4-byte
// little-endian fields.
func EncodeTimeOfDay(w *wirebuf.Writer, v TimeOfDay) {
	w.AppendByte(tag.CalendarTime)
	putUint32LE(w.Reserve(4), v.Sec)
	putUint32LE(w.Reserve(4), v.Nsec)
}

// DecodeTimeOfDay reads a calendar time-of-day.
func DecodeTimeOfDay(r *wirebuf.Reader) (TimeOfDay, error) {
	if err := expectTag(r, tag.CalendarTime); err != nil {
		return TimeOfDay{}, err
	}

	secBuf, err := r.SplitOff(4)
	if err != nil {
		return TimeOfDay{}, err
	}

	nsecBuf, err := r.SplitOff(4)
	if err != nil {
		return TimeOfDay{}, err
	}

	return TimeOfDay{Sec: getUint32LE(secBuf), Nsec: getUint32LE(nsecBuf)}, nil
}

// EncodeDecimal writes a fixed-precision decimal: 16 raw little-endian
// bytes of two's-complement mantissa, then 4 raw little-endian bytes of
// scale.
func EncodeDecimal(w *wirebuf.Writer, v Decimal) {
	w.AppendByte(tag.Decimal)
	buf := w.Reserve(16)
	putUint64LE(buf[0:8], v.Mantissa.Lo)
	putUint64LE(buf[8:16], v.Mantissa.Hi)
	putUint32LE(w.Reserve(4), uint32(v.Scale))
}

// DecodeDecimal reads a fixed-precision decimal.
func DecodeDecimal(r *wirebuf.Reader) (Decimal, error) {
	if err := expectTag(r, tag.Decimal); err != nil {
		return Decimal{}, err
	}

	mantissaBuf, err := r.SplitOff(16)
	if err != nil {
		return Decimal{}, err
	}

	scaleBuf, err := r.SplitOff(4)
	if err != nil {
		return Decimal{}, err
	}

	mantissa := Int128{Lo: getUint64LE(mantissaBuf[0:8]), Hi: getUint64LE(mantissaBuf[8:16])}

	return Decimal{Mantissa: mantissa, Scale: int32(getUint32LE(scaleBuf))}, nil
}

// EncodeUUID writes a 128-bit identifier as its 16 raw little-endian
// bytes.
func EncodeUUID(w *wirebuf.Writer, v UUID) {
	w.AppendByte(tag.UUID)
	w.AppendBytes(v[:])
}

// DecodeUUID reads a 128-bit identifier.
func DecodeUUID(r *wirebuf.Reader) (UUID, error) {
	if err := expectTag(r, tag.UUID); err != nil {
		return UUID{}, err
	}

	buf, err := r.SplitOff(16)
	if err != nil {
		return UUID{}, err
	}

	var v UUID
	copy(v[:], buf)

	return v, nil
}

// expectTag reads one byte and requires it to equal want.
func expectTag(r *wirebuf.Reader, want byte) error {
	t, err := r.ReadByte()
	if err != nil {
		return err
	}
	if t != want {
		return errTypeMismatchTag(t)
	}

	return nil
}
