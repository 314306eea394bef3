// internal/writers/slices.go
package writers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"lcf/internal/jsonlutil"
	"lcf/internal/jsonutil"
	"lcf/internal/output"
	"lcf/pkg/api"
)

// StartFunc spins up a writer goroutine. Rows go in; the first error (or nil)
// comes out once the input is closed and drained.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- output.Row, <-chan error)

// Options carries the presentation switches shared by all formats.
type Options struct {
	Header bool // text: emit the TSV header
	OneHot bool // json, jsonl: include the raw one-hot vectors
}

// SliceWriters maps an output format to its writer. Register in init() blocks.
var SliceWriters = map[string]StartFunc{}

// RegisterSlice adds or replaces (last wins) the writer for format.
func RegisterSlice(format string, fn StartFunc) { SliceWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(SliceWriters))
	for f := range SliceWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterSlice("text", StartTextWriter)
	RegisterSlice("fasta", StartFASTAWriter)
	RegisterSlice("json", StartJSONWriter)
	RegisterSlice("jsonl", StartJSONLWriter)
}

// StartSliceWriter dispatches to the writer registered for format.
func StartSliceWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
	if fn, ok := SliceWriters[format]; ok {
		return fn(out, opt, bufSize)
	}
	// Drain so callers can still close the channel and read the error.
	in := make(chan output.Row)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown slice format %q (no writer registered)", format)
	}()
	return in, errCh
}

// StartTextWriter streams rows as TSV.
func StartTextWriter(out io.Writer, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := output.StreamText(out, in, opt.Header)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartFASTAWriter streams each slice as a FASTA record.
func StartFASTAWriter(out io.Writer, _ Options, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := output.StreamFASTA(out, in)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartJSONWriter collects all rows and writes one pretty-printed JSON array (v1)
// once the input is closed.
func StartJSONWriter(out io.Writer, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		list := make([]api.SliceV1, 0, bufSize)
		for r := range in {
			list = append(list, output.ToAPISlice(r, opt.OneHot))
		}
		errCh <- jsonutil.EncodePretty(out, list)
	}()
	return in, errCh
}

// StartJSONLWriter streams each row as one JSON line (v1).
func StartJSONLWriter(out io.Writer, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
	return jsonlutil.Start[output.Row](out, bufSize,
		func(enc *json.Encoder, r output.Row) error {
			return enc.Encode(output.ToAPISlice(r, opt.OneHot))
		},
		IsBrokenPipe,
	)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
