// Package iomock provides gomock mocks of the capabilities forwarded by the either package.
package iomock

//go:generate go tool mockgen -source=iomock.go -destination=mocks.go -package=iomock

import (
	"io"

	"github.com/ghettovoice/either"
)

// BufferedReader is a buffered reader.
type BufferedReader interface {
	either.BufferedReader
}

// WriterToReader is a reader with a bulk read-to-end operation.
type WriterToReader interface {
	io.Reader
	io.WriterTo
}

// FlushWriter is a buffered writer.
type FlushWriter interface {
	io.Writer
	either.Flusher
}

// BulkWriter is a writer with string and bulk write operations.
type BulkWriter interface {
	io.Writer
	io.StringWriter
	io.ReaderFrom
}

// SizedIterator is an iterator over ints that reports bounds on its length.
type SizedIterator interface {
	either.Iterator[int]
	either.SizeHinter
}
