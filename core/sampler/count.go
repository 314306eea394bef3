// core/sampler/count.go
package sampler

import (
	"errors"
	"io"

	"lcf/core/fasta"
)

// CountValid counts the records of a FASTA file at least sliceSize long,
// i.e. the records a non-cycling Sequential sampler would yield.
// Repeated and Indexed samplers need strictly longer records, so for them
// records of exactly sliceSize are counted here but never sampled.
// Malformed records are not counted.
func CountValid(path string, sliceSize int) (int, error) {
	r, err := fasta.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	n := 0
	for {
		rec, err := r.Read()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return n, nil
		case errors.Is(err, fasta.ErrMalformed):
			continue
		default:
			return n, err
		}
		if len(rec.Seq) >= sliceSize {
			n++
		}
	}
}
