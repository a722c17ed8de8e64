package streams

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

const (
	// StdinName is the name given to the standard input channel
	StdinName = "<stdin>"
	// StdoutName is the name given to the standard output channel
	StdoutName = "<stdout>"
)

// IsStandard returns true if the path denotes a standard stream rather than a file
func IsStandard(path string) bool {
	return path == "" || path == "-"
}

// InputName returns the name of the input channel for the given path
func InputName(path string) string {
	if IsStandard(path) {
		return StdinName
	}
	return path
}

// OutputName returns the name of the output channel for the given path
func OutputName(path string) string {
	if IsStandard(path) {
		return StdoutName
	}
	return path
}

// OpenInput opens the file for reading. An empty path or "-" selects the standard input, which is
// never closed by the returned reader.
func OpenInput(path string) (*NamedReader, error) {
	if IsStandard(path) {
		return NewNamedReader(ioutil.NopCloser(os.Stdin), StdinName), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedReader(f, path), nil
}

// CreateOutput creates or truncates the file for writing. An empty path or "-" selects the standard
// output, which is never closed by the returned writer.
func CreateOutput(path string) (*NamedWriter, error) {
	if IsStandard(path) {
		return NewNamedWriter(nopWriteCloser{os.Stdout}, StdoutName), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedWriter(f, path), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
