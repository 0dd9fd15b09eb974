package wirebuf_test

import (
	"testing"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/wirebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPeekReadAdvance(t *testing.T) {
	r := wirebuf.NewReader([]byte{0x01, 0x02, 0x03})

	b, ok := r.PeekByte()
	require.True(t, ok)
	assert.Equal(t, byte(0x01), b)
	assert.Equal(t, 3, r.Len())

	got, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), got)
	assert.Equal(t, 2, r.Len())

	require.NoError(t, r.Advance(1))
	assert.Equal(t, 1, r.Len())

	buf, err := r.SplitOff(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, buf)
	assert.Equal(t, 0, r.Len())
}

func TestReaderShortBuffer(t *testing.T) {
	r := wirebuf.NewReader([]byte{0x01})

	_, err := r.ReadByte()
	require.NoError(t, err)

	_, err = r.ReadByte()
	assert.ErrorIs(t, err, errs.ErrShortBuffer)

	r2 := wirebuf.NewReader([]byte{0x01, 0x02})
	assert.ErrorIs(t, r2.Advance(5), errs.ErrShortBuffer)

	_, err = r2.SplitOff(5)
	assert.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestReaderDepthLimit(t *testing.T) {
	r := wirebuf.NewReaderWithLimits(nil, wirebuf.Limits{MaxDepth: 2})

	require.NoError(t, r.EnterNested())
	require.NoError(t, r.EnterNested())
	assert.ErrorIs(t, r.EnterNested(), errs.ErrDepthExceeded)

	r.ExitNested()
	r.ExitNested()
	require.NoError(t, r.EnterNested())
}

func TestReaderCountLimit(t *testing.T) {
	r := wirebuf.NewReaderWithLimits(nil, wirebuf.Limits{MaxElements: 3})

	require.NoError(t, r.CheckCount(3))
	assert.ErrorIs(t, r.CheckCount(4), errs.ErrCountExceeded)

	unlimited := wirebuf.NewReader(nil)
	require.NoError(t, unlimited.CheckCount(1_000_000))
}

func TestDefaultLimits(t *testing.T) {
	limits := wirebuf.DefaultLimits()
	assert.Equal(t, wirebuf.DefaultMaxDepth, limits.MaxDepth)
	assert.Equal(t, wirebuf.DefaultMaxElements, limits.MaxElements)
}

func TestNilReaderReturnsErrNilReaderNotPanic(t *testing.T) {
	var r *wirebuf.Reader

	_, ok := r.PeekByte()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.Pos())

	_, err := r.ReadByte()
	assert.ErrorIs(t, err, errs.ErrNilReader)

	assert.ErrorIs(t, r.Advance(1), errs.ErrNilReader)

	_, err = r.SplitOff(1)
	assert.ErrorIs(t, err, errs.ErrNilReader)

	assert.ErrorIs(t, r.EnterNested(), errs.ErrNilReader)
	assert.ErrorIs(t, r.CheckCount(1), errs.ErrNilReader)

	// ExitNested has no error return; it must still not panic on a nil
	// receiver.
	r.ExitNested()
}
