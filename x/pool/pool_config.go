package pool

import (
	"fmt"

	xerrors "github.com/m3db/m3/src/x/errors"
	"github.com/m3db/m3/src/x/instrument"
)

// WatermarkConfiguration contains watermark configuration for pools.
type WatermarkConfiguration struct {
	// The low watermark to start refilling the pool, if zero none.
	RefillLowWatermark float64 `yaml:"low" validate:"min=0.0,max=1.0"`

	// The high watermark to stop refilling the pool, if zero none.
	RefillHighWatermark float64 `yaml:"high" validate:"min=0.0,max=1.0"`
}

// Validate validates the watermark configuration.
func (c WatermarkConfiguration) Validate() error {
	var multiErr xerrors.MultiError
	if c.RefillLowWatermark < 0 || c.RefillLowWatermark > 1 {
		multiErr = multiErr.Add(fmt.Errorf("low watermark %v must be in [0, 1]", c.RefillLowWatermark))
	}
	if c.RefillHighWatermark < 0 || c.RefillHighWatermark > 1 {
		multiErr = multiErr.Add(fmt.Errorf("high watermark %v must be in [0, 1]", c.RefillHighWatermark))
	}
	if c.RefillLowWatermark > c.RefillHighWatermark {
		multiErr = multiErr.Add(fmt.Errorf(
			"low watermark %v must not exceed high watermark %v",
			c.RefillLowWatermark, c.RefillHighWatermark,
		))
	}
	return multiErr.FinalError()
}

// Configuration contains pool configuration.
type Configuration struct {
	// The size of the pool.
	Size *int `yaml:"size"`

	// The watermark configuration.
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// Validate validates the pool configuration.
func (c *Configuration) Validate() error {
	var multiErr xerrors.MultiError
	if c.Size != nil && *c.Size < 0 {
		multiErr = multiErr.Add(fmt.Errorf("pool size %d must not be negative", *c.Size))
	}
	multiErr = multiErr.Add(c.Watermark.Validate())
	return multiErr.FinalError()
}

// NewPoolOptions creates a new set of pool options.
func (c *Configuration) NewPoolOptions(
	instrumentOpts instrument.Options,
) *Options {
	return c.ApplyPoolOptions(NewOptions(), instrumentOpts)
}

// ApplyPoolOptions applies the configuration on top of opts. The size of
// opts is kept unless the configuration sets one.
func (c *Configuration) ApplyPoolOptions(
	opts *Options,
	instrumentOpts instrument.Options,
) *Options {
	opts = opts.
		SetInstrumentOptions(instrumentOpts).
		SetRefillLowWatermark(c.Watermark.RefillLowWatermark).
		SetRefillHighWatermark(c.Watermark.RefillHighWatermark)
	if c.Size != nil {
		opts = opts.SetSize(*c.Size)
	}
	return opts
}
