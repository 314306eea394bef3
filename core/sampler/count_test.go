package sampler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountValid(t *testing.T) {
	path, _ := writeFasta(t,
		rec{"a", "", repeat("ACGT", 20)},  // 80
		rec{"b", "", repeat("ACGT", 25)},  // 100
		rec{"c", "", repeat("ACGTA", 30)}, // 150
	)
	for _, tc := range []struct {
		size, want int
	}{
		{10, 3},
		{90, 2},
		{100, 2}, // records of exactly the slice size count
		{101, 1},
		{10000000, 0},
	} {
		got, err := CountValid(path, tc.size)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "slice size %d", tc.size)
	}
}

func TestCountValidAgreesWithSequential(t *testing.T) {
	path, _ := writeFasta(t,
		rec{"a", "", "ACGT"},
		rec{"b", "", "ACG"},
		rec{"c", "", "ACGTA"},
	)
	n, err := CountValid(path, 4)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	s, err := OpenSequential(path, 4, false)
	require.NoError(t, err)
	defer s.Close()
	yielded := 0
	for ; ; yielded++ {
		if _, err := s.Next(); err != nil {
			break
		}
	}
	require.Equal(t, n, yielded)

	r, err := OpenRepeated(path, 4, false, 1)
	require.NoError(t, err)
	defer r.Close()
	repeated := 0
	for ; ; repeated++ {
		if _, err := r.Next(); err != nil {
			break
		}
	}
	require.Equal(t, 1, repeated, "repeated sampling drops the exact-length record")
}

func TestCountValidSkipsMalformed(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.fa")
	require.NoError(t, os.WriteFile(fn, []byte("ACGT\n>ok\nACGT\n"), 0o644))
	n, err := CountValid(fn, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCountValidMissingFile(t *testing.T) {
	_, err := CountValid(filepath.Join(t.TempDir(), "missing.fa"), 1)
	require.ErrorIs(t, err, os.ErrNotExist)
}
