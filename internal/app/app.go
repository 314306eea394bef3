// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"

	"lcf/core/sampler"
	"lcf/internal/cli"
	"lcf/internal/clibase"
	"lcf/internal/cmdutil"
	"lcf/internal/output"
	"lcf/internal/version"
	"lcf/internal/writers"
)

// RunContext parses argv, drives the selected sampler and writes its slices
// to stdout. It returns the process exit code:
// 0 ok, 2 usage or open error, 3 sampling/output error, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("lcf-sample")
	fs.SetOutput(io.Discard)

	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(0)
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			clibase.PrintExamples(outw, "lcf-sample", clibase.SamplingExamples)
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "lcf-sample version %s\n", version.Version)
		return flush(0)
	}

	if opts.Count {
		n, err := sampler.CountValid(opts.SeqFile, opts.SliceSize)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		_, _ = fmt.Fprintln(outw, n)
		return flush(0)
	}

	src, err := open(opts, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer src.Close()

	inCh, writeErr := writers.StartSliceWriter(outw, opts.Output,
		writers.Options{Header: opts.Header, OneHot: opts.OneHot}, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := drive(ctx, src, opts, func(r output.Row) error {
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if code := flush(0); code != 0 {
		return code
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	cmdutil.Infof(stderr, opts.Quiet, "%d slices from %s", total, opts.SeqFile)
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func samplerOptions(opts cli.Options, stderr io.Writer) []sampler.Option {
	var so []sampler.Option
	if !opts.Quiet {
		so = append(so, sampler.WithWarnings(stderr))
	}
	if opts.Seed != 0 {
		so = append(so, sampler.WithRand(rand.New(rand.NewPCG(opts.Seed, opts.Seed))))
	}
	return so
}
