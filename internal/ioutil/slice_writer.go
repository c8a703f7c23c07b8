// Package ioutil provides I/O helpers.
package ioutil

import (
	"io"

	"braces.dev/errtrace"
)

// SliceWriter writes into a fixed-size byte slice.
// It never grows the slice: once the slice is full, writes are cut short
// with [io.ErrShortWrite].
type SliceWriter struct {
	buf []byte
	off int
}

// NewSliceWriter creates a new SliceWriter over buf.
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf}
}

// Write implements io.Writer.
func (sw *SliceWriter) Write(p []byte) (n int, err error) {
	n = copy(sw.buf[sw.off:], p)
	sw.off += n
	if n < len(p) {
		return n, errtrace.Wrap(io.ErrShortWrite)
	}
	return n, nil
}

// Bytes returns the written part of the slice.
func (sw *SliceWriter) Bytes() []byte { return sw.buf[:sw.off] }

// Available returns the number of bytes that can still be written.
func (sw *SliceWriter) Available() int { return len(sw.buf) - sw.off }

// Reset rewinds the writer to the start of the slice.
func (sw *SliceWriter) Reset() { sw.off = 0 }
