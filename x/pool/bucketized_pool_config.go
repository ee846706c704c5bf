package pool

import (
	"fmt"

	xerrors "github.com/m3db/m3/src/x/errors"
	"github.com/m3db/m3/src/x/instrument"
)

// BucketConfiguration contains configuration for a pool bucket.
type BucketConfiguration struct {
	// The count of the items in the bucket.
	Count int `yaml:"count"`

	// The capacity of each item in the bucket.
	Capacity int `yaml:"capacity"`
}

// NewBucket creates a new bucket.
func (c *BucketConfiguration) NewBucket() Bucket {
	return Bucket{
		Capacity: c.Capacity,
		Count:    c.Count,
	}
}

// BucketizedPoolConfiguration contains configuration for bucketized pools.
type BucketizedPoolConfiguration struct {
	// The pool bucket configuration.
	Buckets []BucketConfiguration `yaml:"buckets"`

	// The watermark configuration.
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// Validate validates the bucket configuration, reporting every invalid
// bucket at once.
func (c *BucketizedPoolConfiguration) Validate() error {
	var (
		multiErr xerrors.MultiError
		seen     = make(map[int]struct{}, len(c.Buckets))
	)
	for i, b := range c.Buckets {
		if b.Capacity <= 0 {
			multiErr = multiErr.Add(fmt.Errorf("bucket %d: capacity %d must be positive", i, b.Capacity))
		}
		if b.Count < 0 {
			multiErr = multiErr.Add(fmt.Errorf("bucket %d: count %d must not be negative", i, b.Count))
		}
		if _, exists := seen[b.Capacity]; exists {
			multiErr = multiErr.Add(fmt.Errorf("bucket %d: duplicate capacity %d", i, b.Capacity))
		}
		seen[b.Capacity] = struct{}{}
	}
	multiErr = multiErr.Add(c.Watermark.Validate())
	return multiErr.FinalError()
}

// NewPoolOptions creates a new set of pool options.
func (c *BucketizedPoolConfiguration) NewPoolOptions(
	instrumentOptions instrument.Options,
) *Options {
	return NewOptions().
		SetInstrumentOptions(instrumentOptions).
		SetRefillLowWatermark(c.Watermark.RefillLowWatermark).
		SetRefillHighWatermark(c.Watermark.RefillHighWatermark)
}

// NewBuckets create a new list of buckets.
func (c *BucketizedPoolConfiguration) NewBuckets() []Bucket {
	buckets := make([]Bucket, 0, len(c.Buckets))
	for _, bconfig := range c.Buckets {
		bucket := bconfig.NewBucket()
		buckets = append(buckets, bucket)
	}
	return buckets
}
