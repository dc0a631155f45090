// Package linebuf splits a stream of writes into lines.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer is an io.Writer that calls a function
// once for every complete line written to it.
//
// Lines are passed to the function without their trailing newline.
// Text after the last newline is held until the line is completed
// or the Writer is flushed.
type Writer struct {
	line func([]byte)

	mu   sync.Mutex // guards pending
	pend []byte
}

var _ io.Writer = (*Writer)(nil)

// NewWriter builds a Writer that calls fn with each line.
// fn must not retain the slice it receives.
func NewWriter(fn func([]byte)) *Writer {
	return &Writer{line: fn}
}

// Write splits bs into lines.
// It always consumes all of bs.
func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			break
		}

		line := bs[:idx]
		bs = bs[idx+1:]
		if len(w.pend) > 0 {
			line = append(w.pend, line...)
			w.pend = w.pend[:0]
		}
		w.line(line)
	}
	w.pend = append(w.pend, bs...)
	return total, nil
}

// Flush passes any incomplete line to the function.
// It does nothing if there isn't one.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pend) > 0 {
		w.line(w.pend)
		w.pend = w.pend[:0]
	}
}
