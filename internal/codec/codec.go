// Package codec implements base128: a lossless re-encoding of an 8-bit byte stream into a stream of
// 7-bit symbols and back.
//
// The input is treated as one continuous bitstream, read most significant bit first, and cut into
// 7-bit values. Each value is written as one byte through an Alphabet. If the last value has fewer
// than 7 real bits it is padded with zeroes on the low end.
//
// The format carries no header and no length marker. The original length is recovered from the
// encoded length alone: n bytes always encode to ceil(8n/7) symbols, and m symbols always decode
// to floor(7m/8) bytes. Encoded lengths of the form 8k+1 are never produced and are rejected.
package codec

import (
	"github.com/pkg/errors"
)

// EncodedLen returns the number of symbols produced for n input bytes
func EncodedLen(n int) int {
	return (n*8 + 6) / 7
}

// DecodedLen returns the number of bytes produced by decoding m symbols
func DecodedLen(m int) int {
	return m * 7 / 8
}

// Encode returns the base128 representation of src
func Encode(alphabet *Alphabet, src []byte) []byte {
	p := NewPacker(alphabet)
	dst := p.Pack(make([]byte, 0, EncodedLen(len(src))), src)
	return p.Flush(dst)
}

// Decode returns the bytes represented by the base128 symbols in src
func Decode(alphabet *Alphabet, src []byte) ([]byte, error) {
	u := NewUnpacker(alphabet)
	dst, err := u.Unpack(make([]byte, 0, DecodedLen(len(src))), src)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if dst, err = u.Flush(dst); err != nil {
		return nil, errors.WithStack(err)
	}
	return dst, nil
}
