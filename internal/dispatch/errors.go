package dispatch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIOFailure is matched (via errors.Is) when a source cannot be read or a sink cannot be written.
// These failures are never retried.
var ErrIOFailure = errors.New("I/O failure")

// IOFailureError identifies the channel which failed
type IOFailureError struct {
	Path string // file path, or the name of the standard stream
	Op   string // open, read, write, flush or close
	Err  error
}

func ioFailure(path, op string, err error) error {
	return errors.WithStack(&IOFailureError{
		Path: path,
		Op:   op,
		Err:  err,
	})
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("%v: could not %s %s: %v", ErrIOFailure, e.Op, e.Path, errors.Cause(e.Err))
}

// Is makes IOFailureError match ErrIOFailure
func (e *IOFailureError) Is(target error) bool {
	return target == ErrIOFailure
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}
