package wirebuf_test

import (
	"testing"

	"github.com/arval-dev/tagwire/wirebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterAppendAndReserve(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	w.AppendByte(0x01)
	w.AppendBytes([]byte{0x02, 0x03})
	buf := w.Reserve(2)
	buf[0] = 0x04
	buf[1] = 0x05

	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, w.Bytes())
	assert.Equal(t, 5, w.Len())
}

func TestWriterReset(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	w.AppendBytes([]byte{0x01, 0x02, 0x03})
	w.Reset()
	assert.Equal(t, 0, w.Len())

	w.AppendByte(0x09)
	assert.Equal(t, []byte{0x09}, w.Bytes())
}

func TestWriterGrowsPastDefaultSize(t *testing.T) {
	w := wirebuf.NewWriter()
	defer w.Release()

	big := make([]byte, 1024*8)
	for i := range big {
		big[i] = byte(i)
	}
	w.AppendBytes(big)

	require.Equal(t, len(big), w.Len())
	assert.Equal(t, big, w.Bytes())
}
