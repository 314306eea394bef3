// Package faidx is a random-access FASTA store addressed by record ordinal.
//
// Records are ordered as they appear in the FASTA file (by byte offset), which
// is the order of the lines of a samtools-style .fai index. Range reads go
// through github.com/biogo/hts/fai so no record is read unless asked for.
package faidx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/biogo/hts/fai"
)

var (
	// ErrNoRecord is returned for record ordinals outside [0, Len()).
	ErrNoRecord = errors.New("faidx: no such record")
	// ErrMalformed is returned when an index entry cannot describe its record
	// (impossible line layout) or the FASTA disagrees with the index.
	ErrMalformed = errors.New("faidx: malformed record")
)

// Store pairs an open FASTA file with its index. Not safe for concurrent use.
type Store struct {
	fh   *os.File
	size int64
	file *fai.File
	recs []fai.Record
}

// Open opens the FASTA at path with the index at indexPath. An empty
// indexPath builds the index in memory by scanning the FASTA once; nothing is
// written to disk.
func Open(path, indexPath string) (*Store, error) {
	var (
		idx fai.Index
		err error
	)
	if indexPath == "" {
		idx, err = buildIndex(path)
	} else {
		idx, err = readIndex(indexPath)
	}
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := New(fh, idx)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open FASTA and a parsed index. Close closes fh.
func New(fh *os.File, idx fai.Index) (*Store, error) {
	fi, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	return &Store{fh: fh, size: fi.Size(), file: fai.NewFile(fh, idx), recs: ordered(idx)}, nil
}

func readIndex(indexPath string) (fai.Index, error) {
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	idx, err := fai.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", indexPath, err)
	}
	return idx, nil
}

func buildIndex(path string) (fai.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	idx, err := fai.NewIndex(f)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", path, err)
	}
	return idx, nil
}

// ordered returns the index records in file order.
func ordered(idx fai.Index) []fai.Record {
	recs := make([]fai.Record, 0, len(idx))
	for _, r := range idx {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Start != recs[j].Start {
			return recs[i].Start < recs[j].Start
		}
		return recs[i].Name < recs[j].Name
	})
	return recs
}

// Len is the number of records in the index.
func (s *Store) Len() int { return len(s.recs) }

// Records returns the index entries in file order. The slice must not be modified.
func (s *Store) Records() []fai.Record { return s.recs }

// Record looks up the index entry of record rid without touching the FASTA.
func (s *Store) Record(rid int) (fai.Record, error) {
	if rid < 0 || rid >= len(s.recs) {
		return fai.Record{}, fmt.Errorf("%w: %d (have %d)", ErrNoRecord, rid, len(s.recs))
	}
	rec := s.recs[rid]
	if rec.Length < 0 || rec.Length > 0 && (rec.BasesPerLine <= 0 || rec.BytesPerLine < rec.BasesPerLine) {
		return rec, fmt.Errorf("%w: %s: length %d, %d bases in %d bytes per line",
			ErrMalformed, rec.Name, rec.Length, rec.BasesPerLine, rec.BytesPerLine)
	}
	if rec.Length > 0 {
		if last := offset(rec, rec.Length-1); last >= s.size {
			return rec, fmt.Errorf("%w: %s: last base at byte %d, file has %d",
				ErrMalformed, rec.Name, last, s.size)
		}
	}
	return rec, nil
}

// offset is the file position of base p of rec.
func offset(rec fai.Record, p int) int64 {
	return rec.Start + int64(p/rec.BasesPerLine)*int64(rec.BytesPerLine) + int64(p%rec.BasesPerLine)
}

// Fetch reads the bases [start, stop) of record rid, line breaks removed.
func (s *Store) Fetch(rid, start, stop int) ([]byte, error) {
	rec, err := s.Record(rid)
	if err != nil {
		return nil, err
	}
	if start < 0 || stop < start || stop > rec.Length {
		return nil, fmt.Errorf("%w: %s:[%d,%d) outside [0,%d)", ErrNoRecord, rec.Name, start, stop, rec.Length)
	}
	seq, err := s.file.SeqRange(rec.Name, start, stop)
	if err != nil {
		return nil, fmt.Errorf("%s:[%d,%d): %w", rec.Name, start, stop, err)
	}
	buf := make([]byte, stop-start)
	n, err := io.ReadFull(seq, buf)
	switch {
	case err == nil:
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return nil, fmt.Errorf("%w: %s: index promises %d bases at %d, file has %d",
			ErrMalformed, rec.Name, stop-start, start, n)
	default:
		return nil, err
	}
	return buf, nil
}

// Close closes the FASTA file.
func (s *Store) Close() error { return s.fh.Close() }
