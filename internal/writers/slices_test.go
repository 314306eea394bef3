package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lcf/core/onehot"
	"lcf/internal/output"
	"lcf/pkg/api"
)

func row(step int, seq string) output.Row {
	return output.Row{Step: step, Index: -1, Slice: onehot.EncodeSeq(nil, []byte(seq))}
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartSliceWriter(&buf, "jsonl", Options{OneHot: true}, 4)
	in <- row(0, "AC")
	in <- row(1, "GT")
	close(in)
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var got api.SliceV1
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	require.Equal(t, 1, got.Step)
	require.Equal(t, "GT", got.Seq)
	require.Equal(t, [][4]uint8{{0, 0, 1, 0}, {0, 0, 0, 1}}, got.OneHot)
}

func TestJSONWriterWritesOneArray(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartSliceWriter(&buf, "json", Options{}, 1)
	in <- row(0, "AC")
	in <- row(1, "NN")
	close(in)
	require.NoError(t, <-done)

	var got []api.SliceV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "NN", got[1].Seq)
	require.Nil(t, got[0].OneHot)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartSliceWriter(&buf, "text", Options{Header: false}, 1)
	in <- row(3, "ACGT")
	close(in)
	require.NoError(t, <-done)
	require.Equal(t, "3\t0\t-\t4\t\tACGT\n", buf.String())
}

func TestUnknownSliceFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartSliceWriter(&b, "nope-format", Options{}, 1)
	close(in)
	err := <-done
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown slice format")
}

func TestFormats(t *testing.T) {
	require.Equal(t, []string{"fasta", "json", "jsonl", "text"}, Formats())
}

func TestIsBrokenPipe(t *testing.T) {
	require.True(t, IsBrokenPipe(io.ErrClosedPipe))
	require.False(t, IsBrokenPipe(nil))
	require.False(t, IsBrokenPipe(io.EOF))
}
