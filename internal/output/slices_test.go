package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lcf/core/onehot"
	"lcf/core/sampler"
)

func slice(s string) sampler.Slice { return onehot.EncodeSeq(nil, []byte(s)) }

func TestToAPISliceForward(t *testing.T) {
	v := ToAPISlice(Row{Step: 2, Sample: 1, Index: -1, Desc: "chr1", Slice: slice("ACgT")}, false)
	require.Equal(t, "ACNT", v.Seq)
	require.Equal(t, 4, v.Length)
	require.Nil(t, v.Index)
	require.Nil(t, v.OneHot)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NotContains(t, string(b), `"index"`)
	require.NotContains(t, string(b), `"onehot"`)
}

func TestToAPISliceRandomAccessWithOneHot(t *testing.T) {
	v := ToAPISlice(Row{Index: 0, Slice: slice("AT")}, true)
	require.NotNil(t, v.Index)
	require.Equal(t, 0, *v.Index)
	require.Equal(t, [][4]uint8{{1, 0, 0, 0}, {0, 0, 0, 1}}, v.OneHot)
}

func TestStreamText(t *testing.T) {
	in := make(chan Row, 2)
	in <- Row{Step: 0, Sample: 0, Index: -1, Desc: "d", Slice: slice("ACGT")}
	in <- Row{Step: 0, Sample: 1, Index: 7, Slice: slice("NN")}
	close(in)

	var buf bytes.Buffer
	require.NoError(t, StreamText(&buf, in, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		TSVHeader,
		"0\t0\t-\t4\td\tACGT",
		"0\t1\t7\t2\t\tNN",
	}, lines)
}
