package util

import (
	"os"
	"sync"
	"testing"

	"bou.ke/monkey"
	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/dispatch"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit and returns a pointer to the last exit code and a function to restore os.Exit
func patchExit() (*int, func()) {
	seqMutex.Lock()

	exitCode := -1
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
	})
	return &exitCode, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, restore := patchExit()
	defer restore()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, restore := patchExit()
	defer restore()

	MustErrorNilOrExit(&flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	})

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, restore := patchExit()
	defer restore()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.Equal(t, 0, *exitCode)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, restore := patchExit()
	defer restore()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_InvalidSymbol(t *testing.T) {
	exitCode, restore := patchExit()
	defer restore()

	_, err := codec.Decode(codec.Raw, []byte{0x10, 200})
	MustErrorNilOrExit(err)

	require.Equal(t, ErrData, *exitCode)
}

func Test_ExitCodes(t *testing.T) {
	_, unknown := dispatch.ParseCommand("compress")
	missing := dispatch.Dispatch(dispatch.Encode, "testdata/does-not-exist", "-")

	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ErrUsage, ExitCode(unknown))
	require.Equal(t, ErrIO, ExitCode(missing))
	require.Equal(t, ErrData, ExitCode(errors.Wrap(&dispatch.MismatchError{Path: "a"}, "verify")))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))
}
