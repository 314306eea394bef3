// core/sampler/sequential.go
package sampler

import (
	"lcf/core/fasta"
)

// Labeled is a slice together with the description of its record.
type Labeled struct {
	Slice Slice
	Desc  string
}

// Sequential yields one random slice per record, in file order.
//
// Records exactly sliceSize long are returned whole; shorter ones are
// skipped.
type Sequential struct {
	src       stream
	sliceSize int
}

// OpenSequential opens a FASTA file (plain, gzip, or "-" for stdin) for
// sequential sampling. Cycling requires a reopenable path.
func OpenSequential(path string, sliceSize int, cycle bool, opts ...Option) (*Sequential, error) {
	if err := validate(sliceSize, 1); err != nil {
		return nil, err
	}
	r, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	return NewSequential(r, sliceSize, cycle, opts...), nil
}

// NewSequential samples from an already open reader and takes ownership of it.
func NewSequential(r *fasta.Reader, sliceSize int, cycle bool, opts ...Option) *Sequential {
	return &Sequential{
		src:       stream{r: r, cycle: cycle, opts: buildOptions(opts)},
		sliceSize: sliceSize,
	}
}

// Next returns a slice of the next record at least sliceSize long.
// It returns io.EOF once the file is exhausted and cycling is off.
func (s *Sequential) Next() (Labeled, error) {
	rec, err := s.src.next(func(n int) bool { return n >= s.sliceSize })
	if err != nil {
		return Labeled{}, err
	}
	off := 0
	if n := len(rec.Seq); n > s.sliceSize {
		off = s.src.opts.offset(n - s.sliceSize)
	}
	return Labeled{Slice: encode(rec.Seq[off : off+s.sliceSize]), Desc: rec.Desc}, nil
}

// SliceSize is the number of symbols per slice.
func (s *Sequential) SliceSize() int { return s.sliceSize }

// Close releases the underlying file.
func (s *Sequential) Close() error { return s.src.close() }
