// Package dispatch binds a Command to its input and output channels and drives the codec over the
// whole stream, one chunk at a time.
package dispatch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/streams"
	"github.com/bokysan/base128/internal/util/buffers"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultChunkSize is the number of bytes read from the source at once
const DefaultChunkSize = buffers.BufferSize

// Stats describes one completed transform
type Stats struct {
	Command  Command
	BytesIn  int64
	BytesOut int64
	Chunks   int
	Elapsed  time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%v: %s -> %s in %d chunk(s), %v",
		s.Command,
		bytefmt.ByteSize(uint64(s.BytesIn)),
		bytefmt.ByteSize(uint64(s.BytesOut)),
		s.Chunks,
		s.Elapsed,
	)
}

type options struct {
	alphabet  *codec.Alphabet
	chunkSize int
}

// Option customizes a dispatcher call
type Option func(o *options)

// WithAlphabet selects the symbol alphabet. The default is codec.Raw.
func WithAlphabet(alphabet *codec.Alphabet) Option {
	return func(o *options) {
		if alphabet != nil {
			o.alphabet = alphabet
		}
	}
}

// WithChunkSize sets how many bytes are read from the source at once. Non-positive values keep the default.
// The chunk size never changes the output.
func WithChunkSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.chunkSize = size
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		alphabet:  codec.Raw,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run parses the command token and dispatches it. Nothing is opened if the command is unknown.
func Run(command string, input, output string, opts ...Option) error {
	cmd, err := ParseCommand(command)
	if err != nil {
		return err
	}
	return Dispatch(cmd, input, output, opts...)
}

// Dispatch transforms the input into the output. An empty path or "-" selects the standard input or
// output. The output file is created or truncated. Both channels are closed on every return path;
// if the call fails, a partially written output file is removed.
func Dispatch(cmd Command, input, output string, opts ...Option) (err error) {
	if !cmd.Valid() {
		return errors.WithStack(&UnknownCommandError{Command: cmd.String()})
	}
	o := newOptions(opts)

	if err = checkDistinct(input, output); err != nil {
		return err
	}

	source, err := streams.OpenInput(input)
	if err != nil {
		return ioFailure(streams.InputName(input), "open", err)
	}
	sink, err := streams.CreateOutput(output)
	if err != nil {
		streams.TryClose(source)
		return ioFailure(streams.OutputName(output), "open", err)
	}

	defer func() {
		var errs *multierror.Error
		if cerr := source.Close(); cerr != nil {
			errs = multierror.Append(errs, ioFailure(source.Name(), "close", cerr))
		}
		if cerr := sink.Close(); cerr != nil {
			errs = multierror.Append(errs, ioFailure(sink.Name(), "close", cerr))
		}
		if err == nil {
			err = flatten(errs)
		} else if errs != nil {
			log.WithError(errs).Debugf("Close errors after failed %v", cmd)
		}
		if err != nil {
			discard(output)
		}
	}()

	log.Debugf("Starting %v: %v -> %v (%v)", cmd, source, sink, o.alphabet)
	stats, err := transcode(cmd, source, sink, source.Name(), sink.Name(), o)
	if err != nil {
		return err
	}
	log.Infof("%v", stats)
	return nil
}

// Transcode runs the transform between arbitrary streams. Neither stream is closed.
func Transcode(cmd Command, r io.Reader, w io.Writer, opts ...Option) (Stats, error) {
	return transcode(cmd, r, w, nameOf(r, "input"), nameOf(w, "output"), newOptions(opts))
}

func transcode(cmd Command, r io.Reader, w io.Writer, inName, outName string, o *options) (stats Stats, err error) {
	stream, err := cmd.NewStream(o.alphabet)
	if err != nil {
		return stats, err
	}

	stats.Command = cmd
	started := time.Now()
	defer func() {
		stats.Elapsed = time.Since(started)
	}()

	bw := bufio.NewWriterSize(w, o.chunkSize)
	buf := make([]byte, o.chunkSize)
	out := make([]byte, 0, codec.EncodedLen(o.chunkSize)+1)

	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			stats.Chunks++
			stats.BytesIn += int64(n)
			if log.IsLevelEnabled(log.TraceLevel) {
				log.Tracef("%v chunk #%d from %v:\n%s", cmd, stats.Chunks, inName, spew.Sdump(buf[:n]))
			}
			if out, err = stream.Update(out[:0], buf[:n]); err != nil {
				return stats, errors.WithStack(err)
			}
			if err = write(bw, out, outName, &stats); err != nil {
				return stats, err
			}
		}
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return stats, ioFailure(inName, "read", rerr)
		}
	}

	// the end of the source is the only place the pending bits are flushed
	if out, err = stream.Final(out[:0]); err != nil {
		return stats, errors.WithStack(err)
	}
	if err = write(bw, out, outName, &stats); err != nil {
		return stats, err
	}
	if err = bw.Flush(); err != nil {
		return stats, ioFailure(outName, "flush", err)
	}
	return stats, nil
}

func write(w io.Writer, p []byte, name string, stats *Stats) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.Write(p)
	stats.BytesOut += int64(n)
	if err != nil {
		return ioFailure(name, "write", err)
	}
	return nil
}

// checkDistinct refuses to truncate the input file by opening it as the output
func checkDistinct(input, output string) error {
	if streams.IsStandard(input) || streams.IsStandard(output) {
		return nil
	}
	in, err := os.Stat(input)
	if err != nil {
		return nil
	}
	out, err := os.Stat(output)
	if err != nil {
		return nil
	}
	if os.SameFile(in, out) {
		return ioFailure(output, "open", errors.Errorf("output is the same file as input %s", input))
	}
	return nil
}

// discard removes an incomplete output file. Only regular files are removed.
func discard(output string) {
	if streams.IsStandard(output) {
		return
	}
	fi, err := os.Stat(output)
	if err != nil || !fi.Mode().IsRegular() {
		return
	}
	if err := os.Remove(output); err != nil {
		log.WithError(err).Warnf("Could not remove incomplete output %s: %v", output, err)
	} else {
		log.Debugf("Removed incomplete output %s", output)
	}
}

func flatten(errs *multierror.Error) error {
	if errs == nil {
		return nil
	}
	if len(errs.Errors) == 1 {
		return errs.Errors[0]
	}
	return errs.ErrorOrNil()
}

func nameOf(v interface{}, fallback string) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fallback
}
