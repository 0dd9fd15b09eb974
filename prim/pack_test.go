package prim_test

import (
	"testing"

	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/wirebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackU8IsOneRawByteNoTag(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()
	prim.PackU8(w, 200)

	assert.Equal(t, []byte{200}, w.Bytes())

	got, err := prim.UnpackU8(wirebuf.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got)
}

func TestPackFloatZeroCollapsesToNone(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()
	prim.PackF64(w, 0)

	assert.Len(t, w.Bytes(), 1, "zero float packs to a single none tag")

	got, err := prim.UnpackF64(wirebuf.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPackFloatNonZeroRoundTrips(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()
	prim.PackF64(w, 2.5)

	got, err := prim.UnpackF64(wirebuf.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestPackDateTimeZeroCollapsesToNone(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()
	prim.PackDateTime(w, prim.DateTime{})

	assert.Len(t, w.Bytes(), 1)

	got, err := prim.UnpackDateTime(wirebuf.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, prim.DateTime{}, got)
}

func TestPackUUIDZeroCollapsesToNone(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()
	prim.PackUUID(w, prim.UUID{})

	assert.Len(t, w.Bytes(), 1)

	got, err := prim.UnpackUUID(wirebuf.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, prim.UUID{}, got)

	w2 := wirebuf.NewWriter()
	defer w2.Release()
	id := prim.UUID{1}
	prim.PackUUID(w2, id)
	assert.Greater(t, w2.Len(), 1)

	got2, err := prim.UnpackUUID(wirebuf.NewReader(w2.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, id, got2)
}
