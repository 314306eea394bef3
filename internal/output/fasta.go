package output

import (
	"fmt"
	"io"

	"lcf/core/onehot"
)

// StreamFASTA streams rows from a channel as FASTA records, one per slice.
// Empty slices are skipped.
func StreamFASTA(w io.Writer, in <-chan Row) error {
	for r := range in {
		if len(r.Slice) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", fastaHeader(r), onehot.DecodeSeq(r.Slice)); err != nil {
			return err
		}
	}
	return nil
}

func fastaHeader(r Row) string {
	h := fmt.Sprintf(">slice_%d_%d", r.Step, r.Sample)
	if r.Index >= 0 {
		h += fmt.Sprintf(" index=%d", r.Index)
	}
	h += fmt.Sprintf(" len=%d", len(r.Slice))
	if r.Desc != "" {
		h += " " + r.Desc
	}
	return h
}
