// core/sampler/indexed.go
package sampler

import (
	"errors"
	"fmt"
	"io"

	"github.com/biogo/hts/fai"

	"lcf/core/faidx"
)

// Indexed samples a FASTA through its .fai index.
//
// It has two access modes sharing one record cursor:
//   - Next walks the records in file order and returns nSamples slices of
//     each record strictly longer than sliceSize.
//   - Len/Get expose a logical address space of Len() slots, one slice per
//     call.
//
// Get maps index i to record i / Len(), not i / nSamples. Every valid i
// therefore resolves to the first record of the index.
//
// Offsets are drawn from [0, length-sliceSize-1), one position narrower than
// the full range of valid starts; when that range is empty the offset is 0.
type Indexed struct {
	store     *faidx.Store
	opts      options
	sliceSize int
	nSamples  int
	cycle     bool

	cursor int        // ordinal of the record last fetched, -1 before any fetch
	cur    fai.Record // index entry of cursor
	curOK  bool       // false after a failed fetch of cursor

	length   int
	lengthOK bool
}

// OpenIndexed opens the FASTA at path with the index at indexPath. An empty
// indexPath builds the index in memory from the FASTA.
func OpenIndexed(path, indexPath string, sliceSize, nSamples int, cycle bool, opts ...Option) (*Indexed, error) {
	if err := validate(sliceSize, nSamples); err != nil {
		return nil, err
	}
	store, err := faidx.Open(path, indexPath)
	if err != nil {
		return nil, err
	}
	return NewIndexed(store, sliceSize, nSamples, cycle, opts...), nil
}

// NewIndexed samples from an open store and takes ownership of it.
func NewIndexed(store *faidx.Store, sliceSize, nSamples int, cycle bool, opts ...Option) *Indexed {
	return &Indexed{
		store:     store,
		opts:      buildOptions(opts),
		sliceSize: sliceSize,
		nSamples:  nSamples,
		cycle:     cycle,
		cursor:    -1,
	}
}

// Len is the number of logical slots: records strictly longer than sliceSize,
// times nSamples. It is computed on the first call and cached; the index is
// never rescanned.
func (x *Indexed) Len() int {
	if x.lengthOK {
		return x.length
	}
	n := 0
	for _, rec := range x.store.Records() {
		if rec.Length > x.sliceSize {
			n++
		}
	}
	x.length, x.lengthOK = n*x.nSamples, true
	return x.length
}

// Records is the number of records in the index, eligible or not.
func (x *Indexed) Records() int { return x.store.Len() }

// SliceSize is the number of symbols per slice.
func (x *Indexed) SliceSize() int { return x.sliceSize }

// Samples is the number of slices per record returned by Next.
func (x *Indexed) Samples() int { return x.nSamples }

// Next advances to the next record strictly longer than sliceSize and
// returns nSamples slices of it. Past the last record it starts over when
// cycling and returns io.EOF otherwise. Malformed records are skipped.
func (x *Indexed) Next() (Batch, error) {
	total := x.store.Len()
	if total == 0 {
		if x.cycle {
			return nil, ErrNoEligible
		}
		return nil, io.EOF
	}
	for visited := 0; ; visited++ {
		if visited > total {
			return nil, ErrNoEligible
		}
		rid := x.cursor + 1
		if rid >= total {
			if !x.cycle {
				x.cursor, x.curOK = total, false
				return nil, io.EOF
			}
			rid = 0
		}
		if err := x.seek(rid); err != nil {
			if errors.Is(err, faidx.ErrMalformed) {
				x.opts.warnf("skipping record %d: %v", rid, err)
				continue
			}
			return nil, err
		}
		if x.cur.Length <= x.sliceSize {
			continue
		}
		out := make(Batch, x.nSamples)
		var err error
		for i := range out {
			if out[i], err = x.draw(); err != nil {
				break
			}
		}
		if err != nil {
			if errors.Is(err, faidx.ErrMalformed) {
				x.opts.warnf("skipping record %d (%s): %v", rid, x.cur.Name, err)
				continue
			}
			return nil, err
		}
		return out, nil
	}
}

// Get returns one slice for logical index i in [0, Len()).
//
// The record is looked up again only when the cursor is elsewhere or its
// last read failed.
func (x *Indexed) Get(i int) (Slice, error) {
	n := x.Len()
	if i < 0 || i >= n {
		return nil, &IndexError{Index: i, Len: n}
	}
	rid := i / n
	if x.cursor != rid || !x.curOK {
		if err := x.seek(rid); err != nil {
			switch {
			case errors.Is(err, faidx.ErrNoRecord):
				return nil, &IndexError{Index: i, Len: n}
			case errors.Is(err, faidx.ErrMalformed):
				return nil, &RecordError{Record: rid, Name: x.cur.Name, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
			}
			return nil, err
		}
	}
	if x.cur.Length <= x.sliceSize {
		return nil, &RecordError{Record: rid, Name: x.cur.Name, Err: fmt.Errorf("%w: %d <= %d", ErrShortRecord, x.cur.Length, x.sliceSize)}
	}
	s, err := x.draw()
	if err != nil {
		if errors.Is(err, faidx.ErrMalformed) || errors.Is(err, faidx.ErrNoRecord) {
			return nil, &RecordError{Record: rid, Name: x.cur.Name, Err: fmt.Errorf("%w: indexed length is wrong: %w", ErrMalformed, err)}
		}
		return nil, err
	}
	return s, nil
}

// seek moves the cursor to rid and loads its index entry.
func (x *Indexed) seek(rid int) error {
	rec, err := x.store.Record(rid)
	x.cursor, x.cur, x.curOK = rid, rec, err == nil
	return err
}

// draw reads one random slice of the record under the cursor.
func (x *Indexed) draw() (Slice, error) {
	off := x.opts.offset(x.cur.Length - x.sliceSize - 1)
	seq, err := x.store.Fetch(x.cursor, off, off+x.sliceSize)
	if err != nil {
		x.curOK = false
		return nil, err
	}
	return encode(seq), nil
}

// Close releases the FASTA file.
func (x *Indexed) Close() error { return x.store.Close() }
