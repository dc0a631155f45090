package linebuf

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string // individual writes
		want []string // lines before Flush
		tail []string // lines after Flush
	}{
		{desc: "empty"},
		{
			desc: "single line",
			give: []string{"foo\n"},
			want: []string{"foo"},
		},
		{
			desc: "multiple lines in one write",
			give: []string{"foo\nbar\nbaz\n"},
			want: []string{"foo", "bar", "baz"},
		},
		{
			desc: "line split across writes",
			give: []string{"fo", "o\nba", "r", "\n"},
			want: []string{"foo", "bar"},
		},
		{
			desc: "empty lines",
			give: []string{"\n\nfoo\n"},
			want: []string{"", "", "foo"},
		},
		{
			desc: "partial line",
			give: []string{"foo\nbar"},
			want: []string{"foo"},
			tail: []string{"foo", "bar"},
		},
		{
			desc: "partial line across writes",
			give: []string{"foo", "bar"},
			tail: []string{"foobar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var got []string
			w := NewWriter(func(line []byte) {
				got = append(got, string(line))
			})

			for _, s := range tt.give {
				n, err := io.WriteString(w, s)
				require.NoError(t, err)
				assert.Equal(t, len(s), n)
			}
			assert.Equal(t, tt.want, got, "before flush")

			w.Flush()
			tail := tt.tail
			if tail == nil {
				tail = tt.want
			}
			assert.Equal(t, tail, got, "after flush")

			w.Flush()
			assert.Equal(t, tail, got, "second flush must be a no-op")
		})
	}
}

func TestWriter_concurrent(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		lines []string
	)
	w := NewWriter(func(line []byte) {
		mu.Lock()
		lines = append(lines, string(line))
		mu.Unlock()
	})

	const N = 50
	var wg sync.WaitGroup
	for range N {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = io.WriteString(w, "hello world\n")
		}()
	}
	wg.Wait()

	require.Len(t, lines, N)
	for _, l := range lines {
		assert.Equal(t, "hello world", l)
	}
}
