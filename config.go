package tagwire

import (
	"github.com/arval-dev/tagwire/endian"
	"github.com/arval-dev/tagwire/internal/options"
	"github.com/arval-dev/tagwire/wirebuf"
)

// DecoderConfig holds the resource limits and byte order a decode call
// runs with. The wire format itself is little-endian only — there is no
// on-wire big-endian variant — but the engine selection is kept
// configurable for callers building their own fixed-width helpers on top
// of this package, the same way the teacher's blob encoders expose
// WithLittleEndian/WithBigEndian even though one is the fixed default.
type DecoderConfig struct {
	limits wirebuf.Limits
	engine endian.EndianEngine
}

// NewDecoderConfig creates a DecoderConfig with DefaultLimits and the
// little-endian engine, then applies opts in order.
func NewDecoderConfig(opts ...DecoderOption) (*DecoderConfig, error) {
	cfg := &DecoderConfig{
		limits: wirebuf.DefaultLimits(),
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewReader creates a wirebuf.Reader over data using this config's limits.
func (c *DecoderConfig) NewReader(data []byte) *wirebuf.Reader {
	return wirebuf.NewReaderWithLimits(data, c.limits)
}

// DecoderOption configures a DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithMaxDepth sets the maximum nesting depth a decode call accepts.
func WithMaxDepth(depth int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.limits.MaxDepth = depth
	})
}

// WithMaxElements sets the maximum element count a single list, map, or
// tuple may declare. Zero means unlimited.
func WithMaxElements(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.limits.MaxElements = n
	})
}

// WithBigEndianEngine selects the big-endian EndianEngine for callers that
// build their own fixed-width helpers against this config; it has no
// effect on the (always little-endian) wire format itself.
func WithBigEndianEngine() DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// Engine returns the configured EndianEngine.
func (c *DecoderConfig) Engine() endian.EndianEngine {
	return c.engine
}
