package prim_test

import (
	"testing"

	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/wirebuf"
	"github.com/stretchr/testify/assert"
)

// These five scenarios, together with the named-struct scenario in
// aggregate's TestNamedStructGoldenScenario, are the reference
// wire-compatibility corpus: an implementation that reproduces all six
// exactly and passes the round-trip and skip-exactness properties is
// wire-compatible.
func TestGoldenScenarios(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		w := wirebuf.NewWriter()
		defer w.Release()
		prim.EncodeBool(w, true)
		assert.Equal(t, []byte{0x04}, w.Bytes())
	})

	t.Run("42u32", func(t *testing.T) {
		w := wirebuf.NewWriter()
		defer w.Release()
		prim.EncodeU32(w, 42)
		assert.Equal(t, []byte{0x2D}, w.Bytes())
	})

	t.Run("-1i32", func(t *testing.T) {
		w := wirebuf.NewWriter()
		defer w.Release()
		prim.EncodeI32(w, -1)
		assert.Equal(t, []byte{0x88, 0x03}, w.Bytes())
	})

	t.Run(`string "hi"`, func(t *testing.T) {
		w := wirebuf.NewWriter()
		defer w.Release()
		prim.EncodeString(w, "hi")
		assert.Equal(t, []byte{0x8D, 0x68, 0x69}, w.Bytes())
	})

	t.Run("short list [1,2,3]", func(t *testing.T) {
		w := wirebuf.NewWriter()
		defer w.Release()
		prim.EncodeList(w, []uint8{1, 2, 3}, prim.EncodeU8)
		assert.Equal(t, []byte{0xBF, 0x04, 0x05, 0x06}, w.Bytes())
	})
}
