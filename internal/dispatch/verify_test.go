package dispatch

import (
	"bytes"
	"os"
	"testing"

	"github.com/bokysan/base128/internal/codec"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_VerifyExecutable(t *testing.T) {
	executable, err := os.Executable()
	require.NoError(t, err)

	for _, alphabet := range []*codec.Alphabet{codec.Raw, codec.Iodine} {
		res, err := Verify(executable, WithAlphabet(alphabet))
		require.NoError(t, err)

		fi, err := os.Stat(executable)
		require.NoError(t, err)
		require.Equal(t, fi.Size(), res.Size)
		require.Equal(t, int64(codec.EncodedLen(int(fi.Size()))), res.EncodedSize)
		require.Contains(t, res.String(), "decodes back unchanged")
	}
}

func Test_VerifySmallFiles(t *testing.T) {
	dir := tempDir(t)
	for _, content := range []string{"", "x", pipelineText} {
		path := writeFile(t, dir, "small.txt", []byte(content))
		res, err := Verify(path, WithChunkSize(3))
		require.NoError(t, err)
		require.Equal(t, int64(len(content)), res.Size)
	}
}

func Test_VerifyNeedsAFile(t *testing.T) {
	_, err := Verify("-")
	require.True(t, errors.Is(err, ErrIOFailure))

	_, err = Verify("testdata/does-not-exist")
	require.True(t, errors.Is(err, ErrIOFailure))
}

func Test_CompareReportsFirstDifference(t *testing.T) {
	n, err := compare("a", bytes.NewBufferString("abcdef"), bytes.NewBufferString("abcdef"), 4)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)

	_, err = compare("a", bytes.NewBufferString("abcdef"), bytes.NewBufferString("abcdXf"), 4)
	require.True(t, errors.Is(err, ErrMismatch))
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, int64(4), mismatch.Offset)

	_, err = compare("a", bytes.NewBufferString("abcdef"), bytes.NewBufferString("abcdefg"), 4)
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, int64(6), mismatch.Offset)

	_, err = compare("a", bytes.NewBufferString("abcd"), bytes.NewBufferString("abc"), 4)
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, int64(3), mismatch.Offset)
}
