package sampler

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lcf/core/onehot"
)

type rec struct {
	id, desc, seq string
}

const lineWidth = 8

// writeFasta writes recs wrapped at lineWidth and a matching .fai; it returns
// both paths.
func writeFasta(t *testing.T, recs ...rec) (string, string) {
	t.Helper()
	var fa, idx strings.Builder
	for _, r := range recs {
		hdr := ">" + r.id
		if r.desc != "" {
			hdr += " " + r.desc
		}
		fa.WriteString(hdr + "\n")
		start := fa.Len()
		bases := 0
		for off := 0; off < len(r.seq); off += lineWidth {
			end := min(off+lineWidth, len(r.seq))
			if off == 0 {
				bases = end
			}
			fa.WriteString(r.seq[off:end] + "\n")
		}
		bytes := bases
		if bases > 0 {
			bytes++
		}
		fmt.Fprintf(&idx, "%s\t%d\t%d\t%d\t%d\n", r.id, len(r.seq), start, bases, bytes)
	}
	dir := t.TempDir()
	faPath := filepath.Join(dir, "x.fa")
	require.NoError(t, os.WriteFile(faPath, []byte(fa.String()), 0o644))
	require.NoError(t, os.WriteFile(faPath+".fai", []byte(idx.String()), 0o644))
	return faPath, faPath + ".fai"
}

func seeded() Option { return WithRand(rand.New(rand.NewPCG(1, 2))) }

func decode(s Slice) string { return string(onehot.DecodeSeq(s)) }

func repeat(sym string, n int) string { return strings.Repeat(sym, n) }

// containsAll reports whether every canonical base occurs in s.
func containsAll(s Slice) bool {
	seen := map[onehot.Base]bool{}
	for _, b := range s {
		seen[b] = true
	}
	return seen[onehot.A] && seen[onehot.C] && seen[onehot.G] && seen[onehot.T]
}
