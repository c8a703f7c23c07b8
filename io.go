package either

import "io"

// Reader is a union of two readers.
// It implements [io.Reader] and [io.WriterTo] by forwarding to the active variant.
//
// WriteTo checks the variant for [io.WriterTo] through an interface
// conversion, which allocates once per call for non-pointer variants.
type Reader[A, B io.Reader] struct {
	Either[A, B]
}

// NewReader returns e as a reader.
func NewReader[A, B io.Reader](e Either[A, B]) Reader[A, B] {
	return Reader[A, B]{e}
}

// Read reads from the active variant.
func (r *Reader[A, B]) Read(p []byte) (int, error) {
	if r.isSecond {
		return r.second.Read(p) //errtrace:skip
	}
	return r.first.Read(p) //errtrace:skip
}

// WriteTo reads the active variant until EOF and writes the data to w.
// It uses the variant's own WriteTo method when it has one.
func (r *Reader[A, B]) WriteTo(w io.Writer) (int64, error) {
	if r.isSecond {
		return writeTo(r.second, w) //errtrace:skip
	}
	return writeTo(r.first, w) //errtrace:skip
}

func writeTo(r io.Reader, w io.Writer) (int64, error) {
	if wt, ok := r.(io.WriterTo); ok {
		return wt.WriteTo(w) //errtrace:skip
	}
	return io.Copy(w, r) //errtrace:skip
}

// BufferedReader is a reader with an internal buffer that can be inspected
// and consumed without copying. [*bufio.Reader] implements it.
type BufferedReader interface {
	io.Reader
	// Buffered returns the number of bytes that can be read from the buffer.
	Buffered() int
	// Peek returns the next n bytes without advancing the reader.
	Peek(n int) ([]byte, error)
	// Discard skips the next n bytes.
	Discard(n int) (discarded int, err error)
}

// BufReader is a union of two buffered readers.
// It implements [BufferedReader] and [io.WriterTo] by forwarding to the active variant.
type BufReader[A, B BufferedReader] struct {
	Reader[A, B]
}

// NewBufReader returns e as a buffered reader.
func NewBufReader[A, B BufferedReader](e Either[A, B]) BufReader[A, B] {
	return BufReader[A, B]{Reader[A, B]{e}}
}

// Buffered returns the number of buffered bytes of the active variant.
func (r *BufReader[A, B]) Buffered() int {
	if r.isSecond {
		return r.second.Buffered()
	}
	return r.first.Buffered()
}

// Peek returns the next n bytes of the active variant without advancing it.
func (r *BufReader[A, B]) Peek(n int) ([]byte, error) {
	if r.isSecond {
		return r.second.Peek(n) //errtrace:skip
	}
	return r.first.Peek(n) //errtrace:skip
}

// Discard skips the next n bytes of the active variant.
func (r *BufReader[A, B]) Discard(n int) (int, error) {
	if r.isSecond {
		return r.second.Discard(n) //errtrace:skip
	}
	return r.first.Discard(n) //errtrace:skip
}

// Flusher is implemented by writers that buffer output.
type Flusher interface {
	Flush() error
}

// Writer is a union of two writers.
// It implements [io.Writer], [io.ReaderFrom], [io.StringWriter] and [Flusher]
// by forwarding to the active variant.
//
// ReadFrom and Flush check the variant for the optional method through an
// interface conversion, which allocates once per call for non-pointer variants.
type Writer[A, B io.Writer] struct {
	Either[A, B]
}

// NewWriter returns e as a writer.
func NewWriter[A, B io.Writer](e Either[A, B]) Writer[A, B] {
	return Writer[A, B]{e}
}

// Write writes p to the active variant.
func (w *Writer[A, B]) Write(p []byte) (int, error) {
	if w.isSecond {
		return w.second.Write(p) //errtrace:skip
	}
	return w.first.Write(p) //errtrace:skip
}

// WriteString writes s to the active variant.
// It uses the variant's own WriteString method when it has one.
func (w *Writer[A, B]) WriteString(s string) (int, error) {
	if w.isSecond {
		return io.WriteString(w.second, s) //errtrace:skip
	}
	return io.WriteString(w.first, s) //errtrace:skip
}

// ReadFrom reads r until EOF and writes the data to the active variant.
// It uses the variant's own ReadFrom method when it has one.
func (w *Writer[A, B]) ReadFrom(r io.Reader) (int64, error) {
	if w.isSecond {
		return readFrom(w.second, r) //errtrace:skip
	}
	return readFrom(w.first, r) //errtrace:skip
}

func readFrom(w io.Writer, r io.Reader) (int64, error) {
	if rf, ok := w.(io.ReaderFrom); ok {
		return rf.ReadFrom(r) //errtrace:skip
	}
	return io.Copy(w, r) //errtrace:skip
}

// Flush flushes the active variant if it implements [Flusher].
// Unbuffered variants have nothing to flush and Flush returns nil.
func (w *Writer[A, B]) Flush() error {
	if w.isSecond {
		return flush(w.second) //errtrace:skip
	}
	return flush(w.first) //errtrace:skip
}

func flush(w any) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush() //errtrace:skip
	}
	return nil
}
