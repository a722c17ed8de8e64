package util

import (
	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/dispatch"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrUsage is returned for commands which are neither encode nor decode
	ErrUsage = 64
	// ErrData is returned when the input is not valid base128 or does not survive a round trip
	ErrData = 65
	// ErrIO is returned when an input cannot be read or an output cannot be written
	ErrIO = 74
	// ErrGeneric is returned for everything else
	ErrGeneric = 99
)

// ExitCode maps an error to the process exit code. Each failure kind has its own code, so callers can
// tell bad arguments from bad input and from a bad environment.
func ExitCode(err error) int {
	var flagsError *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	case errors.Is(err, dispatch.ErrUnknownCommand):
		return ErrUsage
	case errors.Is(err, codec.ErrInvalidSymbol), errors.Is(err, dispatch.ErrMismatch):
		return ErrData
	case errors.Is(err, dispatch.ErrIOFailure):
		return ErrIO
	default:
		return ErrGeneric
	}
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code from ExitCode.
// Help requests exit with 0 without logging.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
	log.Debugf("%+v", err)
	log.Exit(code)
}
