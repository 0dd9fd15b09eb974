package tag_test

import (
	"testing"

	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/tag"
	"github.com/arval-dev/tagwire/wirebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodedSamples returns one encoded value per case, covering every branch
// skipAfterTag dispatches on.
func encodedSamples() map[string][]byte {
	samples := map[string][]byte{}

	add := func(name string, encode func(w *wirebuf.Writer)) {
		w := wirebuf.NewWriter()
		encode(w)
		buf := make([]byte, w.Len())
		copy(buf, w.Bytes())
		w.Release()
		samples[name] = buf
	}

	add("short_int", func(w *wirebuf.Writer) { prim.EncodeU8(w, 5) })
	add("none", prim.EncodeNone)
	add("some_int", func(w *wirebuf.Writer) {
		prim.EncodeSome(w, func(w *wirebuf.Writer) { prim.EncodeI32(w, 7) })
	})
	add("negate", func(w *wirebuf.Writer) { prim.EncodeI32(w, -1) })
	add("u8", func(w *wirebuf.Writer) { prim.EncodeU8(w, 200) })
	add("u16", func(w *wirebuf.Writer) { prim.EncodeU16(w, 40000) })
	add("u32", func(w *wirebuf.Writer) { prim.EncodeU32(w, 1 << 30) })
	add("u64", func(w *wirebuf.Writer) { prim.EncodeU64(w, 1 << 40) })
	add("u128", func(w *wirebuf.Writer) { prim.EncodeU128(w, prim.Uint128{Lo: 1, Hi: 1}) })
	add("f32", func(w *wirebuf.Writer) { prim.EncodeF32(w, 1.5) })
	add("f64", func(w *wirebuf.Writer) { prim.EncodeF64(w, 1.5) })
	add("short_string", func(w *wirebuf.Writer) { prim.EncodeString(w, "hi") })
	add("long_string", func(w *wirebuf.Writer) {
		s := make([]byte, 200)
		for i := range s {
			s[i] = 'a'
		}
		prim.EncodeString(w, string(s))
	})
	add("binary", func(w *wirebuf.Writer) { prim.EncodeBytes(w, []byte{1, 2, 3}) })
	add("short_list", func(w *wirebuf.Writer) {
		prim.EncodeList(w, []uint8{1, 2, 3}, prim.EncodeU8)
	})
	add("long_list", func(w *wirebuf.Writer) {
		items := make([]uint8, 50)
		prim.EncodeList(w, items, prim.EncodeU8)
	})
	add("tuple", func(w *wirebuf.Writer) {
		prim.EncodeTupleHeader(w, 2)
		prim.EncodeU8(w, 1)
		prim.EncodeString(w, "x")
	})
	add("map", func(w *wirebuf.Writer) {
		prim.EncodeMap(w, map[string]uint8{"a": 1}, prim.EncodeString, prim.EncodeU8)
	})
	add("calendar_datetime", func(w *wirebuf.Writer) {
		prim.EncodeDateTime(w, prim.DateTime{Sec: 1000, Nsec: 1})
	})
	add("naive_datetime", func(w *wirebuf.Writer) {
		prim.EncodeNaiveDateTime(w, prim.DateTime{Sec: 1000, Nsec: 1})
	})
	add("calendar_date", func(w *wirebuf.Writer) { prim.EncodeDate(w, prim.Date{Days: 42}) })
	add("calendar_time", func(w *wirebuf.Writer) {
		prim.EncodeTimeOfDay(w, prim.TimeOfDay{Sec: 5, Nsec: 6})
	})
	add("decimal", func(w *wirebuf.Writer) {
		prim.EncodeDecimal(w, prim.Decimal{Mantissa: prim.Int128{Lo: 123}, Scale: 2})
	})
	add("uuid", func(w *wirebuf.Writer) { prim.EncodeUUID(w, prim.UUID{1, 2, 3}) })
	add("json_null", func(w *wirebuf.Writer) { prim.EncodeJSONValue(w, prim.JSONNull()) })
	add("json_bool", func(w *wirebuf.Writer) { prim.EncodeJSONValue(w, prim.JSONBool(true)) })
	add("json_unsigned", func(w *wirebuf.Writer) { prim.EncodeJSONValue(w, prim.JSONUnsigned(9)) })
	add("json_signed", func(w *wirebuf.Writer) { prim.EncodeJSONValue(w, prim.JSONSigned(-9)) })
	add("json_float", func(w *wirebuf.Writer) { prim.EncodeJSONValue(w, prim.JSONFloat(1.25)) })
	add("json_string", func(w *wirebuf.Writer) { prim.EncodeJSONValue(w, prim.JSONString("hi")) })
	add("json_array", func(w *wirebuf.Writer) {
		prim.EncodeJSONValue(w, prim.JSONArray([]prim.JSONValue{prim.JSONUnsigned(1), prim.JSONBool(false)}))
	})
	add("json_object", func(w *wirebuf.Writer) {
		prim.EncodeJSONValue(w, prim.JSONObject(map[string]prim.JSONValue{"k": prim.JSONUnsigned(1)}))
	})

	return samples
}

func TestSkipExactness(t *testing.T) {
	for name, encoded := range encodedSamples() {
		t.Run(name, func(t *testing.T) {
			r := wirebuf.NewReader(encoded)
			require.NoError(t, tag.Skip(r))
			assert.Equal(t, len(encoded), r.Pos(), "skip must consume exactly the encoded value")
		})
	}
}

func TestSkipTrailingBytesUntouched(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	prim.EncodeU8(w, 9)
	trailer := []byte{0xAB, 0xCD}
	data := append(append([]byte{}, w.Bytes()...), trailer...)

	r := wirebuf.NewReader(data)
	require.NoError(t, tag.Skip(r))

	rest, err := r.SplitOff(len(trailer))
	require.NoError(t, err)
	assert.Equal(t, trailer, rest)
}
