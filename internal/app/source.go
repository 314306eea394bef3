// internal/app/source.go
package app

import (
	"context"
	"errors"
	"io"

	"lcf/core/sampler"
	"lcf/internal/cli"
	"lcf/internal/output"
)

// source adapts the three samplers to one row-producing step.
type source interface {
	// step returns the rows of one Next call, or io.EOF.
	step() ([]output.Row, error)
	Close() error
}

type sequentialSource struct{ s *sampler.Sequential }

func (x sequentialSource) step() ([]output.Row, error) {
	l, err := x.s.Next()
	if err != nil {
		return nil, err
	}
	return []output.Row{{Index: -1, Desc: l.Desc, Slice: l.Slice}}, nil
}

func (x sequentialSource) Close() error { return x.s.Close() }

// batchSource covers Repeated and Indexed forward iteration.
type batchSource struct {
	next  func() (sampler.Batch, error)
	close func() error
}

func (x batchSource) step() ([]output.Row, error) {
	b, err := x.next()
	if err != nil {
		return nil, err
	}
	rows := make([]output.Row, len(b))
	for i, sl := range b {
		rows[i] = output.Row{Sample: i, Index: -1, Slice: sl}
	}
	return rows, nil
}

func (x batchSource) Close() error { return x.close() }

// lookupSource walks a list of logical indices through Indexed.Get.
type lookupSource struct {
	x   *sampler.Indexed
	idx []int
}

func (x *lookupSource) step() ([]output.Row, error) {
	if len(x.idx) == 0 {
		return nil, io.EOF
	}
	i := x.idx[0]
	x.idx = x.idx[1:]
	sl, err := x.x.Get(i)
	if err != nil {
		return nil, err
	}
	return []output.Row{{Index: i, Slice: sl}}, nil
}

func (x *lookupSource) Close() error { return x.x.Close() }

func open(opts cli.Options, stderr io.Writer) (source, error) {
	so := samplerOptions(opts, stderr)
	switch opts.Mode {
	case cli.ModeRepeated:
		s, err := sampler.OpenRepeated(opts.SeqFile, opts.SliceSize, opts.Cycle, opts.Samples, so...)
		if err != nil {
			return nil, err
		}
		return batchSource{next: s.Next, close: s.Close}, nil
	case cli.ModeIndexed:
		x, err := sampler.OpenIndexed(opts.SeqFile, opts.IndexFile, opts.SliceSize, opts.Samples, opts.Cycle, so...)
		if err != nil {
			return nil, err
		}
		if len(opts.Get) > 0 {
			return &lookupSource{x: x, idx: append([]int(nil), opts.Get...)}, nil
		}
		return batchSource{next: x.Next, close: x.Close}, nil
	default:
		s, err := sampler.OpenSequential(opts.SeqFile, opts.SliceSize, opts.Cycle, so...)
		if err != nil {
			return nil, err
		}
		return sequentialSource{s: s}, nil
	}
}

// drive pulls up to opts.Limit steps (0 = until EOF) and sends every row.
// It returns the number of rows sent.
func drive(ctx context.Context, src source, opts cli.Options, send func(output.Row) error) (int, error) {
	total := 0
	for step := 0; opts.Limit == 0 || step < opts.Limit; step++ {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		rows, err := src.step()
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		for _, r := range rows {
			r.Step = step
			if err := send(r); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
