package codec

import (
	"fmt"
)

// Unpacker is the reverse of Packer: it joins 7-bit symbols back into 8-bit bytes. The padding
// added by Packer.Flush is always shorter than a byte, so it is dropped at the end of the stream.
type Unpacker struct {
	alphabet *Alphabet
	acc      uint16 // pending bits, right aligned
	bits     uint   // number of pending bits, always < 8 between calls
	offset   int64  // symbols consumed so far
	last     byte   // last symbol consumed
	err      error
}

// NewUnpacker creates an unpacker reading symbols of the given alphabet. A nil alphabet means Raw.
func NewUnpacker(alphabet *Alphabet) *Unpacker {
	if alphabet == nil {
		alphabet = Raw
	}
	return &Unpacker{
		alphabet: alphabet,
	}
}

// Unpack appends the bytes decoded from src to dst. On the first symbol which is not part of
// the alphabet it stops and returns an *InvalidSymbolError; dst then holds everything decoded
// before that symbol. Once failed, the unpacker keeps returning the same error until Reset.
func (u *Unpacker) Unpack(dst, src []byte) ([]byte, error) {
	if u.err != nil {
		return dst, u.err
	}
	for _, s := range src {
		v := u.alphabet.decode[s]
		if v < 0 {
			u.err = &InvalidSymbolError{
				Offset: u.offset,
				Symbol: s,
				Reason: fmt.Sprintf("not part of the %v alphabet", u.alphabet.name),
			}
			return dst, u.err
		}
		u.offset++
		u.last = s

		u.acc = u.acc<<7 | uint16(v)
		u.bits += 7
		if u.bits >= 8 {
			u.bits -= 8
			dst = append(dst, byte(u.acc>>u.bits))
			u.acc &= 1<<u.bits - 1
		}
	}
	return dst, nil
}

// Flush validates the end of the stream and resets the unpacker. The tail must be shorter than
// 7 bits (a full trailing symbol would carry no data) and must be all zeroes.
func (u *Unpacker) Flush(dst []byte) ([]byte, error) {
	err := u.err
	if err == nil {
		switch {
		case u.bits == 7:
			err = &InvalidSymbolError{
				Offset: u.offset - 1,
				Symbol: u.last,
				Reason: "trailing symbol carries no data, stream is truncated or padded",
			}
		case u.acc != 0:
			err = &InvalidSymbolError{
				Offset: u.offset - 1,
				Symbol: u.last,
				Reason: fmt.Sprintf("non-zero padding in the last %d bits", u.bits),
			}
		}
	}
	u.Reset()
	return dst, err
}

// Offset returns the number of symbols consumed since the last Reset
func (u *Unpacker) Offset() int64 {
	return u.offset
}

func (u *Unpacker) Reset() {
	u.acc = 0
	u.bits = 0
	u.offset = 0
	u.last = 0
	u.err = nil
}

func (u *Unpacker) Update(dst, src []byte) ([]byte, error) {
	return u.Unpack(dst, src)
}

func (u *Unpacker) Final(dst []byte) ([]byte, error) {
	return u.Flush(dst)
}
