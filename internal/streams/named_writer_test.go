package streams

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewNamedWriter(f, f.Name())
	defer obj.Close()

	require.Equal(t, f.Name(), obj.String())
}

func Test_WrappedNamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj1 := NewNamedWriter(f, f.Name())
	obj2 := NewSafeWriter(obj1)
	obj3 := NewNamedWriter(obj2, "decode")
	defer obj3.Close()

	require.Equal(t, "decode->"+f.Name(), obj3.String())
}
