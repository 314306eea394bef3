// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformed marks a record the scanner could not attribute to a header.
	// Callers iterating a whole file may skip it and keep reading.
	ErrMalformed = errors.New("fasta: malformed record")
	// ErrNotReopenable is returned by Reopen for readers not backed by a file path.
	ErrNotReopenable = errors.New("fasta: reader cannot be reopened")
)

// Record is one FASTA entry. Desc is the header text after the ID, or "".
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Reader is a forward-only cursor over the records of a FASTA stream.
// It is not safe for concurrent use.
type Reader struct {
	path string
	rc   io.ReadCloser
	sc   *bufio.Scanner

	header  []byte // header of the next record, already consumed from sc
	pending bool
	line    int
	done    bool
}

// Open opens a FASTA file (plain or gzip; "-" for stdin).
// Readers opened from a regular path can be rewound with Reopen.
func Open(path string) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	r := &Reader{path: path}
	r.reset(rc)
	return r, nil
}

// NewReader wraps an already open stream. The result cannot be reopened and
// Close does not close r.
func NewReader(r io.Reader) *Reader {
	fr := &Reader{}
	fr.reset(io.NopCloser(r))
	return fr
}

func (r *Reader) reset(rc io.ReadCloser) {
	r.rc = rc
	r.sc = newScanner(rc)
	r.header = nil
	r.pending = false
	r.line = 0
	r.done = false
}

// Path is the path the reader was opened from ("" for NewReader).
func (r *Reader) Path() string { return r.path }

// Read returns the next record, or io.EOF once the stream is exhausted.
//
// Sequence lines that appear before any header are returned as a single
// error wrapping ErrMalformed; the following record is still readable.
// Scanner failures (I/O, over-long lines) end the stream.
func (r *Reader) Read() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	var (
		rec        Record
		seq        []byte
		haveHeader bool
		orphanLine int
	)
	if r.pending {
		rec.ID, rec.Desc = parseHeader(r.header)
		haveHeader = true
		r.header, r.pending = nil, false
	}
	for r.sc.Scan() {
		r.line++
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if !haveHeader && orphanLine == 0 {
				rec.ID, rec.Desc = parseHeader(line[1:])
				haveHeader = true
				continue
			}
			r.header = append(r.header[:0], line[1:]...)
			r.pending = true
			if orphanLine > 0 {
				return Record{}, fmt.Errorf("%w: sequence data before first header at line %d", ErrMalformed, orphanLine)
			}
			rec.Seq = seq
			return rec, nil
		}
		if !haveHeader {
			if orphanLine == 0 {
				orphanLine = r.line
			}
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	if orphanLine > 0 {
		return Record{}, fmt.Errorf("%w: sequence data before first header at line %d", ErrMalformed, orphanLine)
	}
	if !haveHeader {
		return Record{}, io.EOF
	}
	rec.Seq = seq
	return rec, nil
}

// Reopen closes the underlying stream and starts again from the first record.
func (r *Reader) Reopen() error {
	if r.path == "" || r.path == StdinPath {
		return ErrNotReopenable
	}
	if err := r.rc.Close(); err != nil {
		return err
	}
	rc, err := openReader(r.path)
	if err != nil {
		return err
	}
	r.reset(rc)
	return nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	r.done = true
	return r.rc.Close()
}

// parseHeader splits a header line (without '>') into ID and description.
func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
