// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// SamplingExamples is the quickstart body of lcf-sample.
func SamplingExamples(out io.Writer) {
	lines := []string{
		"  # one random 200-mer per record",
		"  lcf-sample --sequences genome.fa --slice-size 200",
		"",
		"  # five 200-mers per record, cycling for 1000 steps, as JSONL",
		"  lcf-sample --sequences genome.fa --mode repeated --samples 5 --slice-size 200 \\",
		"             --cycle --limit 1000 --output jsonl",
		"",
		"  # random access through the .fai index",
		"  lcf-sample --sequences genome.fa --index genome.fa.fai --mode indexed \\",
		"             --slice-size 200 --samples 5 --get 0,9",
		"",
		"  # how many records are long enough",
		"  lcf-sample --sequences genome.fa --slice-size 200 --count",
	}
	for _, l := range lines {
		_, _ = fmt.Fprintln(out, l)
	}
}
