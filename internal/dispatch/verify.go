package dispatch

import (
	"fmt"
	"io"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrMismatch is matched (via errors.Is) when a file does not survive an encode/decode round trip
var ErrMismatch = errors.New("round-trip mismatch")

// MismatchError points to the first byte which differs
type MismatchError struct {
	Path   string
	Offset int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s differs after decoding at offset %d", ErrMismatch, e.Path, e.Offset)
}

// Is makes MismatchError match ErrMismatch
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// VerifyResult describes a successful round trip
type VerifyResult struct {
	Path        string
	Size        int64
	EncodedSize int64
	Elapsed     time.Duration
}

func (r VerifyResult) String() string {
	return fmt.Sprintf("%s: %s encodes to %s and decodes back unchanged (%v)",
		r.Path, bytefmt.ByteSize(uint64(r.Size)), bytefmt.ByteSize(uint64(r.EncodedSize)), r.Elapsed)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Verify encodes the file, decodes the result and compares it with the file byte for byte. The
// encoded form is never stored: the file is read once through the encoder and decoder and once as the
// reference, side by side.
func Verify(input string, opts ...Option) (res VerifyResult, err error) {
	o := newOptions(opts)
	res.Path = input
	started := time.Now()

	if streams.IsStandard(input) {
		return res, ioFailure(streams.StdinName, "open", errors.New("verify needs a file, standard input can only be read once"))
	}

	original, err := streams.OpenInput(input)
	if err != nil {
		return res, ioFailure(input, "open", err)
	}
	defer streams.TryClose(original)

	reference, err := streams.OpenInput(input)
	if err != nil {
		return res, ioFailure(input, "open", err)
	}
	defer streams.TryClose(reference)

	encoded := &countingReader{r: codec.NewEncoder(o.alphabet, original)}
	decoded := codec.NewDecoder(o.alphabet, encoded)

	if res.Size, err = compare(input, reference, decoded, o.chunkSize); err != nil {
		return res, err
	}
	res.EncodedSize = encoded.n
	res.Elapsed = time.Since(started)

	if expected := int64(codec.EncodedLen(int(res.Size))); expected != res.EncodedSize {
		return res, errors.Errorf("%s: encoded size %d, expected %d", input, res.EncodedSize, expected)
	}

	log.Infof("%v", res)
	return res, nil
}

// compare reads both streams to the end and returns their common length, or the offset of the first difference
func compare(path string, expected, actual io.Reader, size int) (int64, error) {
	a := make([]byte, size)
	b := make([]byte, size)

	var offset int64
	for {
		na, err := io.ReadFull(expected, a)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return offset, ioFailure(path, "read", err)
		}
		nb, err := io.ReadFull(actual, b)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			if errors.Is(err, codec.ErrInvalidSymbol) {
				return offset, errors.WithStack(err)
			}
			return offset, ioFailure(path, "read", err)
		}

		n := na
		if nb < n {
			n = nb
		}
		for i := 0; i < n; i++ {
			if a[i] != b[i] {
				return offset, errors.WithStack(&MismatchError{Path: path, Offset: offset + int64(i)})
			}
		}
		if na != nb {
			return offset, errors.WithStack(&MismatchError{Path: path, Offset: offset + int64(n)})
		}

		offset += int64(n)
		if n < size {
			return offset, nil
		}
	}
}
