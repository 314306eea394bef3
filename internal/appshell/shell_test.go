package appshell

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPassesArgsAndCode(t *testing.T) {
	var got []string
	code := run(func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
		require.NoError(t, ctx.Err())
		got = argv
		_, _ = io.WriteString(stdout, "ok")
		return 2
	}, []string{"-a", "b"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Equal(t, 2, code)
	require.Equal(t, []string{"-a", "b"}, got)
}
