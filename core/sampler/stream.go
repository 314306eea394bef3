// core/sampler/stream.go
package sampler

import (
	"errors"
	"fmt"
	"io"

	"lcf/core/fasta"
)

// stream is the record cursor shared by Sequential and Repeated.
type stream struct {
	r     *fasta.Reader
	cycle bool
	opts  options

	yielded bool // an eligible record came out since the last (re)open
}

// next returns the next record whose length satisfies eligible, reopening the
// file at EOF when cycling. Malformed records are skipped.
func (s *stream) next(eligible func(n int) bool) (fasta.Record, error) {
	for {
		rec, err := s.r.Read()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if !s.cycle {
				return fasta.Record{}, io.EOF
			}
			if !s.yielded {
				return fasta.Record{}, fmt.Errorf("%s: %w", s.r.Path(), ErrNoEligible)
			}
			if err := s.r.Reopen(); err != nil {
				return fasta.Record{}, fmt.Errorf("cycle %s: %w", s.r.Path(), err)
			}
			s.yielded = false
			continue
		case errors.Is(err, fasta.ErrMalformed):
			s.opts.warnf("%s: skipping: %v", s.r.Path(), err)
			continue
		default:
			return fasta.Record{}, err
		}
		if !eligible(len(rec.Seq)) {
			continue
		}
		s.yielded = true
		return rec, nil
	}
}

func (s *stream) close() error { return s.r.Close() }
