package streams

import (
	"io"
)

// Closed is an interface which defines if a method to check if a stream is closed or not
type Closed interface {
	Closed() bool
}

// ReadCloserClosed is the input side of a dispatcher channel
type ReadCloserClosed interface {
	io.ReadCloser
	Closed
}

// WriteCloserClosed is the output side of a dispatcher channel
type WriteCloserClosed interface {
	io.WriteCloser
	Closed
}

type UnwrappedReadCloser interface {
	Unwrap() io.ReadCloser
}

type UnwrappedWriteCloser interface {
	Unwrap() io.WriteCloser
}
