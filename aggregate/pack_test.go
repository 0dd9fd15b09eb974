package aggregate_test

import (
	"testing"

	"github.com/arval-dev/tagwire/aggregate"
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/wirebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackNamedStructRoundTrip(t *testing.T) {
	const fingerprint = uint64(0xDEADBEEF)

	w := wirebuf.NewWriter()
	defer w.Release()

	enc := aggregate.NewPackWriter(w)
	p := enc.BeginNamedStruct(fingerprint)
	p.WriteMember(func(w *wirebuf.Writer) { prim.EncodeU32(w, 42) })
	p.WriteMember(func(w *wirebuf.Writer) { prim.EncodeString(w, "hi") })

	r := wirebuf.NewReader(w.Bytes())
	dec := aggregate.NewPackReader(r)
	require.NoError(t, dec.ExpectFingerprint(fingerprint))

	id, err := prim.DecodeU32(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	name, err := prim.DecodeString(r)
	require.NoError(t, err)
	assert.Equal(t, "hi", name)
}

func TestPackFingerprintMismatch(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	enc := aggregate.NewPackWriter(w)
	p := enc.BeginNamedStruct(1)
	p.WriteMember(func(w *wirebuf.Writer) { prim.EncodeU32(w, 1) })

	r := wirebuf.NewReader(w.Bytes())
	dec := aggregate.NewPackReader(r)
	err := dec.ExpectFingerprint(2)
	assert.ErrorIs(t, err, errs.ErrFingerprintMismatch)
}

func TestPackPositionalStructRoundTrip(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	enc := aggregate.NewPackWriter(w)
	p := enc.BeginPositionalStruct(2)
	p.WriteMember(func(w *wirebuf.Writer) { prim.EncodeU32(w, 1) })
	p.WriteMember(func(w *wirebuf.Writer) { prim.EncodeU32(w, 2) })

	r := wirebuf.NewReader(w.Bytes())
	dec := aggregate.NewPackReader(r)
	n, err := dec.ReadPositionalCount()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	a, err := prim.DecodeU32(r)
	require.NoError(t, err)
	b, err := prim.DecodeU32(r)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, []uint32{a, b})
}

func TestPackUnitStructWritesNoBytes(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	enc := aggregate.NewPackWriter(w)
	enc.WriteUnitStruct()

	assert.Zero(t, w.Len())
}

func TestPackUnitEnumVariantID(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	enc := aggregate.NewPackWriter(w)
	enc.WriteUnitEnum(9)

	r := wirebuf.NewReader(w.Bytes())
	dec := aggregate.NewPackReader(r)
	id, err := dec.ReadVariantID()
	require.NoError(t, err)
	assert.Equal(t, uint64(9), id)
}
