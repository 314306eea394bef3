package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func never(error) bool { return false }

func TestStartEncodesEachValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 0, func(enc *json.Encoder, v int) error { return enc.Encode(v) }, never)
	for i := 0; i < 3; i++ {
		in <- i
	}
	close(in)
	require.NoError(t, <-done)
	require.Equal(t, "0\n1\n2\n", buf.String())
}

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(*json.Encoder, int) error { return boom }, never)
	for i := 0; i < 10; i++ {
		in <- i // must not block even though encoding failed
	}
	close(in)
	require.ErrorIs(t, <-done, boom)
}

func TestStartSuppressesBrokenPipe(t *testing.T) {
	boom := errors.New("pipe")
	in, done := Start[int](&bytes.Buffer{}, 1,
		func(*json.Encoder, int) error { return boom },
		func(err error) bool { return errors.Is(err, boom) })
	in <- 1
	close(in)
	require.NoError(t, <-done)
}
