package transcode

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/dispatch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_DispatchOptions(t *testing.T) {
	opts, err := (&Options{}).DispatchOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	_, err = (&Options{Alphabet: "base64"}).DispatchOptions()
	require.Error(t, err)

	_, err = (&Options{ChunkSize: -1}).DispatchOptions()
	require.Error(t, err)
}

func Test_EncodeDecodeCommands(t *testing.T) {
	dir, err := ioutil.TempDir("", "transcode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "in.txt")
	require.NoError(t, ioutil.WriteFile(input, []byte("testing testing one two three...\n"), 0644))

	encode := NewCommand("encode")
	encode.Alphabet = "latin1"
	encode.ChunkSize = 5
	encode.Args.Input = input
	encode.Args.Output = filepath.Join(dir, "in.b128")
	require.NoError(t, encode.Execute(nil))

	encoded, err := ioutil.ReadFile(encode.Args.Output)
	require.NoError(t, err)
	require.Equal(t, codec.Encode(codec.Latin1, []byte("testing testing one two three...\n")), encoded)

	decode := NewCommand("decode")
	decode.Alphabet = "latin1"
	decode.Args.Input = encode.Args.Output
	decode.Args.Output = filepath.Join(dir, "out.txt")
	require.NoError(t, decode.Execute(nil))

	decoded, err := ioutil.ReadFile(decode.Args.Output)
	require.NoError(t, err)
	require.Equal(t, "testing testing one two three...\n", string(decoded))
}

func Test_UnknownToken(t *testing.T) {
	err := NewCommand("compress").Execute(nil)
	require.True(t, errors.Is(err, dispatch.ErrUnknownCommand))
}
