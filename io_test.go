package either_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"
	"github.com/golang/snappy"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/either"
	"github.com/ghettovoice/either/internal/ioutil"
	"github.com/ghettovoice/either/internal/testutil/iomock"
)

var mockData = bytes.Repeat([]byte{0xff}, 256)

// errReader fails every read with err.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestReader_Read(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   either.Either[*bufio.Reader, *bytes.Reader]
	}{
		{"first", either.First[*bufio.Reader, *bytes.Reader](bufio.NewReader(bytes.NewReader(mockData)))},
		{"second", either.Second[*bufio.Reader](bytes.NewReader(mockData))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			r := either.NewReader(c.in)

			buf := make([]byte, 16)
			n, err := r.Read(buf)
			if err != nil {
				t.Fatalf("r.Read(buf) error = %v, want nil", err)
			}
			if n != len(buf) {
				t.Fatalf("r.Read(buf) = %d, want %d", n, len(buf))
			}
			if diff := cmp.Diff(buf, mockData[:len(buf)]); diff != "" {
				t.Fatalf("read bytes mismatch\ndiff (-got +want):\n%v", diff)
			}
		})
	}
}

func TestReader_ReadToEnd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   either.Either[*bufio.Reader, *bytes.Reader]
	}{
		{"first", either.First[*bufio.Reader, *bytes.Reader](bufio.NewReader(bytes.NewReader(mockData)))},
		{"second", either.Second[*bufio.Reader](bytes.NewReader(mockData))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			r := either.NewReader(c.in)

			var buf bytes.Buffer
			n, err := r.WriteTo(&buf)
			if err != nil {
				t.Fatalf("r.WriteTo(buf) error = %v, want nil", err)
			}
			if n != int64(len(mockData)) {
				t.Fatalf("r.WriteTo(buf) = %d, want %d", n, len(mockData))
			}
			if diff := cmp.Diff(buf.Bytes(), mockData); diff != "" {
				t.Fatalf("read bytes mismatch\ndiff (-got +want):\n%v", diff)
			}

			if data, err := io.ReadAll(&r); err != nil || len(data) != 0 {
				t.Errorf("io.ReadAll(r) after WriteTo = (%d bytes, %v), want (0 bytes, <nil>)", len(data), err)
			}
		})
	}
}

func TestReader_ReadAll(t *testing.T) {
	t.Parallel()

	r := either.NewReader(either.Second[*bufio.Reader](bytes.NewReader(mockData)))
	data, err := io.ReadAll(&r)
	if err != nil {
		t.Fatalf("io.ReadAll(r) error = %v, want nil", err)
	}
	if len(data) != len(mockData) {
		t.Fatalf("io.ReadAll(r) = %d bytes, want %d", len(data), len(mockData))
	}
}

func TestReader_WriteToForwarded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := iomock.NewMockWriterToReader(ctrl)

	var dst bytes.Buffer
	m.EXPECT().WriteTo(&dst).Return(int64(256), nil).Times(1)

	r := either.NewReader(either.First[*iomock.MockWriterToReader, *bytes.Reader](m))
	n, err := io.Copy(&dst, &r)
	if err != nil {
		t.Fatalf("io.Copy(dst, r) error = %v, want nil", err)
	}
	if n != 256 {
		t.Fatalf("io.Copy(dst, r) = %d, want 256", n)
	}
}

func TestReader_ErrorsPassThrough(t *testing.T) {
	t.Parallel()

	errBoom := errtrace.Wrap(errors.New("boom"))

	r := either.NewReader(either.Second[*bytes.Reader](errReader{errBoom}))
	if _, err := r.Read(make([]byte, 4)); err != errBoom {
		t.Errorf("r.Read(buf) error = %v, want %v", err, errBoom)
	}
	if _, err := r.WriteTo(io.Discard); err != errBoom {
		t.Errorf("r.WriteTo(w) error = %v, want %v", err, errBoom)
	}

	empty := either.NewReader(either.First[*bytes.Reader, errReader](bytes.NewReader(nil)))
	if _, err := empty.Read(make([]byte, 4)); err != io.EOF {
		t.Errorf("empty.Read(buf) error = %v, want %v", err, io.EOF)
	}
}

func TestReader_Codecs(t *testing.T) {
	t.Parallel()

	var snappyData bytes.Buffer
	sw := snappy.NewBufferedWriter(&snappyData)
	if _, err := sw.Write(mockData); err != nil {
		t.Fatalf("snappy write error = %v", err)
	}
	if err := sw.Close(); err != nil {
		t.Fatalf("snappy close error = %v", err)
	}

	var lz4Data bytes.Buffer
	lw := lz4.NewWriter(&lz4Data)
	if _, err := lw.Write(mockData); err != nil {
		t.Fatalf("lz4 write error = %v", err)
	}
	if err := lw.Close(); err != nil {
		t.Fatalf("lz4 close error = %v", err)
	}

	open := func(codec string) either.Either[*snappy.Reader, *lz4.Reader] {
		if codec == "snappy" {
			return either.First[*snappy.Reader, *lz4.Reader](snappy.NewReader(bytes.NewReader(snappyData.Bytes())))
		}
		return either.Second[*snappy.Reader](lz4.NewReader(bytes.NewReader(lz4Data.Bytes())))
	}

	for _, codec := range []string{"snappy", "lz4"} {
		t.Run(codec, func(t *testing.T) {
			t.Parallel()

			r := either.NewReader(open(codec))

			buf := make([]byte, 16)
			if _, err := io.ReadFull(&r, buf); err != nil {
				t.Fatalf("io.ReadFull(r, buf) error = %v, want nil", err)
			}
			if diff := cmp.Diff(buf, mockData[:16]); diff != "" {
				t.Fatalf("read bytes mismatch\ndiff (-got +want):\n%v", diff)
			}

			rest, err := io.ReadAll(&r)
			if err != nil {
				t.Fatalf("io.ReadAll(r) error = %v, want nil", err)
			}
			if len(rest) != len(mockData)-16 {
				t.Fatalf("io.ReadAll(r) = %d bytes, want %d", len(rest), len(mockData)-16)
			}
		})
	}
}

func TestBufReader(t *testing.T) {
	t.Parallel()

	t.Run("bufio variant", func(t *testing.T) {
		t.Parallel()

		r := either.NewBufReader(either.First[*bufio.Reader, *iomock.MockBufferedReader](
			bufio.NewReader(strings.NewReader("hello world")),
		))

		if got := r.Buffered(); got != 0 {
			t.Fatalf("r.Buffered() before fill = %d, want 0", got)
		}
		peeked, err := r.Peek(5)
		if err != nil {
			t.Fatalf("r.Peek(5) error = %v, want nil", err)
		}
		if string(peeked) != "hello" {
			t.Fatalf("r.Peek(5) = %q, want \"hello\"", peeked)
		}
		if got := r.Buffered(); got != len("hello world") {
			t.Fatalf("r.Buffered() after fill = %d, want %d", got, len("hello world"))
		}
		if n, err := r.Discard(6); err != nil || n != 6 {
			t.Fatalf("r.Discard(6) = (%d, %v), want (6, <nil>)", n, err)
		}
		rest, err := io.ReadAll(&r)
		if err != nil {
			t.Fatalf("io.ReadAll(r) error = %v, want nil", err)
		}
		if string(rest) != "world" {
			t.Fatalf("io.ReadAll(r) = %q, want \"world\"", rest)
		}
	})

	t.Run("every method forwarded", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := iomock.NewMockBufferedReader(ctrl)
		errPeek := errtrace.Wrap(errors.New("peek failed"))
		gomock.InOrder(
			m.EXPECT().Buffered().Return(4).Times(1),
			m.EXPECT().Peek(8).Return([]byte("abcd"), errPeek).Times(1),
			m.EXPECT().Discard(2).Return(2, nil).Times(1),
			m.EXPECT().Read(gomock.Len(2)).DoAndReturn(func(p []byte) (int, error) {
				return copy(p, "cd"), nil
			}).Times(1),
		)

		r := either.NewBufReader(either.Second[*bufio.Reader](m))

		if got := r.Buffered(); got != 4 {
			t.Fatalf("r.Buffered() = %d, want 4", got)
		}
		peeked, err := r.Peek(8)
		if err != errPeek {
			t.Fatalf("r.Peek(8) error = %v, want %v", err, errPeek)
		}
		if string(peeked) != "abcd" {
			t.Fatalf("r.Peek(8) = %q, want \"abcd\"", peeked)
		}
		if n, err := r.Discard(2); err != nil || n != 2 {
			t.Fatalf("r.Discard(2) = (%d, %v), want (2, <nil>)", n, err)
		}
		buf := make([]byte, 2)
		if n, err := r.Read(buf); err != nil || string(buf[:n]) != "cd" {
			t.Fatalf("r.Read(buf) = (%q, %v), want (\"cd\", <nil>)", buf[:n], err)
		}
	})
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("fixed sink", func(t *testing.T) {
		t.Parallel()

		sink := make([]byte, 256)
		w := either.NewWriter(either.First[*ioutil.SliceWriter, *bytes.Buffer](ioutil.NewSliceWriter(sink)))

		buf := bytes.Repeat([]byte{1}, 16)
		n, err := w.Write(buf)
		if err != nil {
			t.Fatalf("w.Write(buf) error = %v, want nil", err)
		}
		if n != len(buf) {
			t.Fatalf("w.Write(buf) = %d, want %d", n, len(buf))
		}
		if diff := cmp.Diff(sink[:len(buf)], buf); diff != "" {
			t.Fatalf("sink bytes mismatch\ndiff (-got +want):\n%v", diff)
		}

		sw, _ := w.First()
		if got, want := sw.Available(), len(sink)-len(buf); got != want {
			t.Fatalf("sw.Available() after write = %d, want %d", got, want)
		}
	})

	t.Run("growable sink", func(t *testing.T) {
		t.Parallel()

		var sink bytes.Buffer
		w := either.NewWriter(either.Second[*ioutil.SliceWriter](&sink))
		if n, err := w.Write([]byte("abc")); err != nil || n != 3 {
			t.Fatalf("w.Write(abc) = (%d, %v), want (3, <nil>)", n, err)
		}
		if sink.String() != "abc" {
			t.Fatalf("sink = %q, want \"abc\"", sink.String())
		}
	})

	t.Run("short write error passes through", func(t *testing.T) {
		t.Parallel()

		w := either.NewWriter(either.First[*ioutil.SliceWriter, *bytes.Buffer](ioutil.NewSliceWriter(make([]byte, 2))))
		n, err := w.Write([]byte("abc"))
		if !errors.Is(err, io.ErrShortWrite) {
			t.Fatalf("w.Write(abc) error = %v, want %v", err, io.ErrShortWrite)
		}
		if n != 2 {
			t.Fatalf("w.Write(abc) = %d, want 2", n)
		}
	})
}

func TestWriter_Flush(t *testing.T) {
	t.Parallel()

	t.Run("buffered variant", func(t *testing.T) {
		t.Parallel()

		var sink bytes.Buffer
		w := either.NewWriter(either.Second[*bytes.Buffer](bufio.NewWriter(&sink)))
		if _, err := w.Write([]byte("abc")); err != nil {
			t.Fatalf("w.Write(abc) error = %v, want nil", err)
		}
		if sink.Len() != 0 {
			t.Fatalf("sink before flush = %q, want empty", sink.String())
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("w.Flush() error = %v, want nil", err)
		}
		if sink.String() != "abc" {
			t.Fatalf("sink after flush = %q, want \"abc\"", sink.String())
		}
	})

	t.Run("unbuffered variant", func(t *testing.T) {
		t.Parallel()

		w := either.NewWriter(either.First[*bytes.Buffer, *bufio.Writer](new(bytes.Buffer)))
		if err := w.Flush(); err != nil {
			t.Fatalf("w.Flush() error = %v, want nil", err)
		}
	})

	t.Run("errors pass through", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := iomock.NewMockFlushWriter(ctrl)
		errWrite := errtrace.Wrap(errors.New("write failed"))
		errFlush := errtrace.Wrap(errors.New("flush failed"))
		m.EXPECT().Write([]byte("abc")).Return(1, errWrite).Times(1)
		m.EXPECT().Flush().Return(errFlush).Times(1)

		w := either.NewWriter(either.First[*iomock.MockFlushWriter, *bytes.Buffer](m))
		if n, err := w.Write([]byte("abc")); err != errWrite || n != 1 {
			t.Errorf("w.Write(abc) = (%d, %v), want (1, %v)", n, err, errWrite)
		}
		if err := w.Flush(); err != errFlush {
			t.Errorf("w.Flush() error = %v, want %v", err, errFlush)
		}
	})
}

func TestWriter_BulkForwarded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := iomock.NewMockBulkWriter(ctrl)

	src := io.LimitReader(strings.NewReader("payload"), 7)
	m.EXPECT().WriteString("abc").Return(3, nil).Times(1)
	m.EXPECT().ReadFrom(src).Return(int64(7), nil).Times(1)

	w := either.NewWriter(either.Second[*bytes.Buffer](m))
	if n, err := w.WriteString("abc"); err != nil || n != 3 {
		t.Fatalf("w.WriteString(abc) = (%d, %v), want (3, <nil>)", n, err)
	}
	if n, err := w.ReadFrom(src); err != nil || n != 7 {
		t.Fatalf("w.ReadFrom(src) = (%d, %v), want (7, <nil>)", n, err)
	}
}

func TestWriter_BulkFallback(t *testing.T) {
	t.Parallel()

	sink := make([]byte, 16)
	w := either.NewWriter(either.First[*ioutil.SliceWriter, *bytes.Buffer](ioutil.NewSliceWriter(sink)))

	if n, err := w.WriteString("abc"); err != nil || n != 3 {
		t.Fatalf("w.WriteString(abc) = (%d, %v), want (3, <nil>)", n, err)
	}
	if n, err := io.Copy(&w, strings.NewReader("def")); err != nil || n != 3 {
		t.Fatalf("io.Copy(w, def) = (%d, %v), want (3, <nil>)", n, err)
	}
	if got := string(sink[:6]); got != "abcdef" {
		t.Fatalf("sink = %q, want \"abcdef\"", got)
	}

	sw, _ := w.First()
	sw.Reset()
	if n, err := w.WriteString("xyz"); err != nil || n != 3 {
		t.Fatalf("w.WriteString(xyz) after reset = (%d, %v), want (3, <nil>)", n, err)
	}
	if got := string(sw.Bytes()); got != "xyz" {
		t.Fatalf("sw.Bytes() after reset = %q, want \"xyz\"", got)
	}
	if got := sw.Available(); got != len(sink)-3 {
		t.Fatalf("sw.Available() after reset = %d, want %d", got, len(sink)-3)
	}
}

func TestWriter_Codecs(t *testing.T) {
	t.Parallel()

	payload := []byte(strings.Repeat("either ", 64))

	t.Run("snappy", func(t *testing.T) {
		t.Parallel()

		var sink bytes.Buffer
		w := either.NewWriter(either.First[*snappy.Writer, *zstd.Encoder](snappy.NewBufferedWriter(&sink)))
		if _, err := w.Write(payload); err != nil {
			t.Fatalf("w.Write(payload) error = %v, want nil", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("w.Flush() error = %v, want nil", err)
		}

		got, err := io.ReadAll(snappy.NewReader(bytes.NewReader(sink.Bytes())))
		if err != nil {
			t.Fatalf("snappy decode error = %v", err)
		}
		if diff := cmp.Diff(got, payload); diff != "" {
			t.Fatalf("decoded bytes mismatch\ndiff (-got +want):\n%v", diff)
		}
	})

	t.Run("zstd", func(t *testing.T) {
		t.Parallel()

		var sink bytes.Buffer
		enc, err := zstd.NewWriter(&sink, zstd.WithEncoderConcurrency(1))
		if err != nil {
			t.Fatalf("zstd.NewWriter error = %v", err)
		}
		w := either.NewWriter(either.Second[*snappy.Writer](enc))
		if _, err := w.Write(payload); err != nil {
			t.Fatalf("w.Write(payload) error = %v, want nil", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("w.Flush() error = %v, want nil", err)
		}
		if sink.Len() == 0 {
			t.Fatalf("sink is empty after w.Flush()")
		}
		if err := enc.Close(); err != nil {
			t.Fatalf("enc.Close() error = %v", err)
		}

		dec, err := zstd.NewReader(nil)
		if err != nil {
			t.Fatalf("zstd.NewReader error = %v", err)
		}
		defer dec.Close()

		got, err := dec.DecodeAll(sink.Bytes(), nil)
		if err != nil {
			t.Fatalf("zstd decode error = %v", err)
		}
		if diff := cmp.Diff(got, payload); diff != "" {
			t.Fatalf("decoded bytes mismatch\ndiff (-got +want):\n%v", diff)
		}
	})
}
