package codec

import (
	"bytes"
	"io/ioutil"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

// Test_ChunkBoundaries feeds the same input split at every possible position and in
// increasingly large pieces. The pending bits must survive every boundary.
func Test_ChunkBoundaries(t *testing.T) {
	src := randomBytes(99, 203)
	expected := Encode(Raw, src)

	for size := 1; size <= len(src); size++ {
		p := NewPacker(Raw)
		var encoded []byte
		for i := 0; i < len(src); i += size {
			end := i + size
			if end > len(src) {
				end = len(src)
			}
			encoded = p.Pack(encoded, src[i:end])
		}
		encoded = p.Flush(encoded)
		require.Equal(t, expected, encoded, "chunk size %d", size)

		u := NewUnpacker(Raw)
		var decoded []byte
		var err error
		for i := 0; i < len(encoded); i += size {
			end := i + size
			if end > len(encoded) {
				end = len(encoded)
			}
			decoded, err = u.Unpack(decoded, encoded[i:end])
			require.NoError(t, err)
		}
		decoded, err = u.Flush(decoded)
		require.NoError(t, err)
		require.Equal(t, src, decoded, "chunk size %d", size)
	}
}

func Test_PackerReuseAfterFlush(t *testing.T) {
	p := NewPacker(Iodine)
	first := p.Flush(p.Pack(nil, []byte("abc")))
	second := p.Flush(p.Pack(nil, []byte("abc")))
	require.Equal(t, first, second)
	require.Equal(t, 0, p.Pending())
}

func Test_UnpackerErrorIsSticky(t *testing.T) {
	u := NewUnpacker(Raw)
	_, err := u.Unpack(nil, []byte{0x01, 0x90})
	require.True(t, errors.Is(err, ErrInvalidSymbol))

	_, err = u.Unpack(nil, []byte{0x01})
	require.True(t, errors.Is(err, ErrInvalidSymbol))

	_, err = u.Flush(nil)
	require.True(t, errors.Is(err, ErrInvalidSymbol))
}

func Test_StreamingReaders(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoded, err := ioutil.ReadAll(NewEncoder(Latin1, iotest.OneByteReader(bytes.NewReader(encoderTest))))
		require.NoError(t, err)
		require.Equal(t, Encode(Latin1, encoderTest), encoded)

		decoded, err := ioutil.ReadAll(NewDecoder(Latin1, iotest.HalfReader(bytes.NewReader(encoded))))
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_StreamingLargeInput(t *testing.T) {
	src := randomBytes(5, 100000)
	decoded, err := ioutil.ReadAll(NewDecoder(Raw, NewEncoder(Raw, iotest.DataErrReader(bytes.NewReader(src)))))
	require.NoError(t, err)
	require.Equal(t, src, decoded)
}

func Test_StreamingWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(Iodine, buf)
	for _, b := range encoderTest {
		_, err := w.Write([]byte{b})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.Equal(t, Encode(Iodine, encoderTest), buf.Bytes())
}

func Test_StreamingDecoderInvalidSymbol(t *testing.T) {
	encoded := Encode(Raw, encoderTest)
	encoded[10] = 200

	_, err := ioutil.ReadAll(NewDecoder(Raw, bytes.NewReader(encoded)))
	require.True(t, errors.Is(err, ErrInvalidSymbol))
}

func Test_TransformShortDestination(t *testing.T) {
	dst := make([]byte, 3)
	nDst, nSrc, err := NewEncodeTransformer(Raw).Transform(dst, encoderTest, true)
	require.Equal(t, transform.ErrShortDst, err)
	require.Equal(t, 2, nSrc)
	require.Equal(t, Encode(Raw, encoderTest)[:nDst], dst[:nDst])

	res, _, err := transform.Bytes(NewEncodeTransformer(Raw), encoderTest)
	require.NoError(t, err)
	require.Equal(t, Encode(Raw, encoderTest), res)

	res, _, err = transform.Bytes(NewDecodeTransformer(Raw), Encode(Raw, encoderTest))
	require.NoError(t, err)
	require.Equal(t, encoderTest, res)
}
