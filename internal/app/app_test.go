package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lcf/pkg/api"
)

const genome = `>r1 first
AAAAAAAAAA
AAAAAAAAAA
>r2 second
CCCCCCCCCC
CCCCCCCCCC
>tiny
ACG
`

func writeGenome(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "g.fa")
	require.NoError(t, os.WriteFile(fn, []byte(genome), 0o644))
	return fn
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := Run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestSequentialText(t *testing.T) {
	code, out, stderr := run(t, "--sequences", writeGenome(t), "--slice-size", "5", "--seed", "7")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"step\tsample\tindex\tlength\tdesc\tseq",
		"0\t0\t-\t5\tfirst\tAAAAA",
		"1\t0\t-\t5\tsecond\tCCCCC",
	}, lines)
	require.Contains(t, stderr, "INFO: 2 slices")
}

func TestRepeatedJSONL(t *testing.T) {
	code, out, stderr := run(t,
		"--sequences", writeGenome(t), "--mode", "repeated",
		"--slice-size", "4", "--samples", "3", "--output", "jsonl", "--quiet",
	)
	require.Equal(t, 0, code, stderr)
	require.Empty(t, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	var last api.SliceV1
	require.NoError(t, json.Unmarshal([]byte(lines[5]), &last))
	require.Equal(t, 1, last.Step)
	require.Equal(t, 2, last.Sample)
	require.Equal(t, "CCCC", last.Seq)
}

func TestIndexedGet(t *testing.T) {
	code, out, stderr := run(t,
		"--sequences", writeGenome(t), "--mode", "indexed",
		"--slice-size", "4", "--samples", "5", "--get", "0,9", "--no-header",
	)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "0\t0\t0\t4\t\tAAAA\n1\t0\t9\t4\t\tAAAA\n", out)
}

func TestIndexedGetOutOfRange(t *testing.T) {
	code, _, stderr := run(t,
		"--sequences", writeGenome(t), "--mode", "indexed",
		"--slice-size", "4", "--samples", "5", "--get", "10",
	)
	require.Equal(t, 3, code)
	require.Contains(t, stderr, "10 out of bounds")
}

func TestIndexedCycleLimit(t *testing.T) {
	code, out, stderr := run(t,
		"--sequences", writeGenome(t), "--mode", "indexed",
		"--slice-size", "4", "--samples", "2", "--cycle", "--limit", "5", "--no-header", "--quiet",
	)
	require.Equal(t, 0, code, stderr)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestCount(t *testing.T) {
	code, out, _ := run(t, "--sequences", writeGenome(t), "--slice-size", "3", "--count")
	require.Equal(t, 0, code)
	require.Equal(t, "3\n", out)
}

func TestUsageAndErrors(t *testing.T) {
	code, out, _ := run(t)
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage of lcf-sample")

	code, _, stderr := run(t, "--slice-size", "4")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "--sequences is required")

	code, _, _ = run(t, "--sequences", filepath.Join(t.TempDir(), "missing.fa"), "--slice-size", "4")
	require.Equal(t, 2, code)

	code, out, _ = run(t, "--version")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "lcf-sample version "))

	code, out, _ = run(t, "--examples")
	require.Equal(t, 0, code)
	require.Contains(t, out, "lcf-sample — quickstart")
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := RunContext(ctx, []string{"--sequences", writeGenome(t), "--slice-size", "4"}, &out, &errb)
	require.Equal(t, 130, code)
}
