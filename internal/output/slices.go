// internal/output/slices.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"lcf/core/onehot"
	"lcf/core/sampler"
	"lcf/pkg/api"
)

// Row is one slice as produced by the CLI driver.
type Row struct {
	Step   int
	Sample int
	Index  int // logical index, -1 when the slice came from forward iteration
	Desc   string
	Slice  sampler.Slice
}

// TSVHeader is the canonical header row for text/TSV outputs.
const TSVHeader = "step\tsample\tindex\tlength\tdesc\tseq"

// ToAPISlice converts a Row to the stable wire schema (v1).
func ToAPISlice(r Row, withOneHot bool) api.SliceV1 {
	v := api.SliceV1{
		Step:   r.Step,
		Sample: r.Sample,
		Desc:   r.Desc,
		Length: len(r.Slice),
		Seq:    string(onehot.DecodeSeq(r.Slice)),
	}
	if r.Index >= 0 {
		idx := r.Index
		v.Index = &idx
	}
	if withOneHot {
		v.OneHot = make([][4]uint8, len(r.Slice))
		for i, b := range r.Slice {
			v.OneHot[i] = b
		}
	}
	return v
}

// FormatRow renders one TSV line (no trailing newline).
func FormatRow(r Row) string {
	idx := "-"
	if r.Index >= 0 {
		idx = strconv.Itoa(r.Index)
	}
	return fmt.Sprintf("%d\t%d\t%s\t%d\t%s\t%s",
		r.Step, r.Sample, idx, len(r.Slice), r.Desc, onehot.DecodeSeq(r.Slice))
}

// StreamText writes rows as they arrive, optionally preceded by TSVHeader.
func StreamText(w io.Writer, in <-chan Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}
