// core/sampler/repeated.go
package sampler

import (
	"lcf/core/fasta"
)

// Repeated yields nSamples independent slices per record, in file order.
// Only records strictly longer than sliceSize are sampled, so a record of
// exactly sliceSize is not repeated nSamples times.
type Repeated struct {
	src       stream
	sliceSize int
	nSamples  int
}

// OpenRepeated opens a FASTA file for repeated sampling.
func OpenRepeated(path string, sliceSize int, cycle bool, nSamples int, opts ...Option) (*Repeated, error) {
	if err := validate(sliceSize, nSamples); err != nil {
		return nil, err
	}
	r, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	return NewRepeated(r, sliceSize, cycle, nSamples, opts...), nil
}

// NewRepeated samples from an already open reader and takes ownership of it.
func NewRepeated(r *fasta.Reader, sliceSize int, cycle bool, nSamples int, opts ...Option) *Repeated {
	return &Repeated{
		src:       stream{r: r, cycle: cycle, opts: buildOptions(opts)},
		sliceSize: sliceSize,
		nSamples:  nSamples,
	}
}

// Next returns nSamples slices of the next eligible record.
// It returns io.EOF once the file is exhausted and cycling is off.
func (s *Repeated) Next() (Batch, error) {
	rec, err := s.src.next(func(n int) bool { return n > s.sliceSize })
	if err != nil {
		return nil, err
	}
	span := len(rec.Seq) - s.sliceSize
	out := make(Batch, s.nSamples)
	for i := range out {
		off := s.src.opts.offset(span)
		out[i] = encode(rec.Seq[off : off+s.sliceSize])
	}
	return out, nil
}

// SliceSize is the number of symbols per slice.
func (s *Repeated) SliceSize() int { return s.sliceSize }

// Samples is the number of slices per record.
func (s *Repeated) Samples() int { return s.nSamples }

// Close releases the underlying file.
func (s *Repeated) Close() error { return s.src.close() }
