// core/sampler/options.go
package sampler

import (
	"fmt"
	"io"
	"math/rand/v2"

	"lcf/core/onehot"
	"lcf/internal/cmdutil"
)

// Slice is one encoded window of a record, one vector per symbol.
type Slice []onehot.Base

// Batch holds the slices drawn from a single record.
type Batch []Slice

// Option configures a sampler at construction.
type Option func(*options)

type options struct {
	rng  *rand.Rand
	warn io.Writer
}

// WithRand makes the sampler draw offsets from r instead of a private
// generator seeded from process entropy. r must not be shared with another
// sampler.
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rng = r } }

// WithWarnings reports skipped malformed records to w as WARN lines.
// Samplers are silent by default.
func WithWarnings(w io.Writer) Option { return func(o *options) { o.warn = w } }

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

func (o options) warnf(format string, a ...any) {
	cmdutil.Warnf(o.warn, false, format, a...)
}

// offset draws uniformly from [0, n). An empty range yields 0.
func (o options) offset(n int) int {
	if n <= 0 {
		return 0
	}
	return o.rng.IntN(n)
}

func validate(sliceSize, nSamples int) error {
	if sliceSize < 0 {
		return fmt.Errorf("%w: slice size %d", ErrInvalidConfig, sliceSize)
	}
	if nSamples < 1 {
		return fmt.Errorf("%w: %d samples per record", ErrInvalidConfig, nSamples)
	}
	return nil
}

func encode(seq []byte) Slice {
	return onehot.EncodeSeq(make([]onehot.Base, 0, len(seq)), seq)
}
