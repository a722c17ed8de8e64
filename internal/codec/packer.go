package codec

// Stream is a stateful transform over one logical byte stream. Update may be called any number of
// times with consecutive pieces of the stream; Final must be called exactly once, at the end of
// the stream. Both append their output to dst and return the extended slice.
type Stream interface {
	Update(dst, src []byte) ([]byte, error)
	Final(dst []byte) ([]byte, error)
	Reset()
}

// Packer re-slices a stream of 8-bit bytes into 7-bit symbols, most significant bit first.
// Bits which do not fill a complete symbol are carried over to the next call to Pack.
type Packer struct {
	alphabet *Alphabet
	acc      uint16 // pending bits, right aligned
	bits     uint   // number of pending bits, always < 7 between calls
}

// NewPacker creates a packer writing symbols of the given alphabet. A nil alphabet means Raw.
func NewPacker(alphabet *Alphabet) *Packer {
	if alphabet == nil {
		alphabet = Raw
	}
	return &Packer{
		alphabet: alphabet,
	}
}

// Pack appends the symbols for src to dst
func (p *Packer) Pack(dst, src []byte) []byte {
	for _, val := range src {
		p.acc = p.acc<<8 | uint16(val)
		p.bits += 8
		for p.bits >= 7 {
			p.bits -= 7
			dst = append(dst, p.alphabet.encode[(p.acc>>p.bits)&0x7f])
		}
		p.acc &= 1<<p.bits - 1
	}
	return dst
}

// Flush appends the last, zero-padded symbol (if any bits are pending) and resets the packer
func (p *Packer) Flush(dst []byte) []byte {
	if p.bits > 0 {
		dst = append(dst, p.alphabet.encode[(p.acc<<(7-p.bits))&0x7f])
	}
	p.Reset()
	return dst
}

// Pending returns the number of bits waiting for the next symbol
func (p *Packer) Pending() int {
	return int(p.bits)
}

func (p *Packer) Reset() {
	p.acc = 0
	p.bits = 0
}

func (p *Packer) Update(dst, src []byte) ([]byte, error) {
	return p.Pack(dst, src), nil
}

func (p *Packer) Final(dst []byte) ([]byte, error) {
	return p.Flush(dst), nil
}
