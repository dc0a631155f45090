package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	testing.TB

	Buffer bytes.Buffer
}

func (t *fakeT) Logf(msg string, args ...any) {
	fmt.Fprintln(&t.Buffer, fmt.Sprintf(msg, args...))
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var fake *fakeT
	t.Run("log", func(t *testing.T) {
		fake = &fakeT{TB: t}
		w := Writer(fake)

		io.WriteString(w, "foo\nba")
		io.WriteString(w, "r\nbaz")
		assert.Equal(t, "foo\nbar\n", fake.Buffer.String())
	})

	// The final partial line is logged during cleanup.
	assert.Equal(t, "foo\nbar\nbaz\n", fake.Buffer.String())
}
