// core/sampler/errors.go
package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange: a logical index or record that does not exist.
	ErrOutOfRange = errors.New("index out of range")
	// ErrMalformed: a record whose length or layout cannot be determined, or
	// whose data disagrees with the index.
	ErrMalformed = errors.New("malformed record")
	// ErrShortRecord: a lookup landed on a record too short to slice.
	ErrShortRecord = errors.New("record shorter than slice")
	// ErrNoEligible: a cycling sampler went through its whole input without
	// finding a single record long enough to sample.
	ErrNoEligible = errors.New("no record long enough to sample")
	// ErrInvalidConfig: bad slice size or sample count at construction.
	ErrInvalidConfig = errors.New("invalid sampler configuration")
)

// IndexError reports a logical index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%d out of bounds [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// RecordError reports a failure tied to one record of an indexed store.
type RecordError struct {
	Record int    // ordinal in the index
	Name   string // may be empty when the record could not be read
	Err    error
}

func (e *RecordError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("record %d (%s): %v", e.Record, e.Name, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Record, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
