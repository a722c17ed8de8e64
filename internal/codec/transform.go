package codec

import (
	"io"

	"golang.org/x/text/transform"
)

type encodeTransformer struct {
	p *Packer
}

// NewEncodeTransformer returns a transform.Transformer which encodes its input. The pending bits are
// flushed only when the transformer is told it reached the end of the input.
func NewEncodeTransformer(alphabet *Alphabet) transform.Transformer {
	return &encodeTransformer{p: NewPacker(alphabet)}
}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		// k input bytes produce at most (6+8k)/7 symbols
		k := ((len(dst)-nDst)*7 - 6) / 8
		if k <= 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		if k > len(src)-nSrc {
			k = len(src) - nSrc
		}
		nDst += len(t.p.Pack(dst[nDst:nDst], src[nSrc:nSrc+k]))
		nSrc += k
	}

	if atEOF && t.p.Pending() > 0 {
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += len(t.p.Flush(dst[nDst:nDst]))
	}
	return nDst, nSrc, nil
}

func (t *encodeTransformer) Reset() {
	t.p.Reset()
}

type decodeTransformer struct {
	u *Unpacker
}

// NewDecodeTransformer returns a transform.Transformer which decodes its input. Invalid symbols are
// reported as *InvalidSymbolError.
func NewDecodeTransformer(alphabet *Alphabet) transform.Transformer {
	return &decodeTransformer{u: NewUnpacker(alphabet)}
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		// every symbol produces at most one byte
		k := len(dst) - nDst
		if k <= 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		if k > len(src)-nSrc {
			k = len(src) - nSrc
		}
		before := t.u.Offset()
		out, err := t.u.Unpack(dst[nDst:nDst], src[nSrc:nSrc+k])
		nDst += len(out)
		nSrc += int(t.u.Offset() - before)
		if err != nil {
			return nDst, nSrc, err
		}
	}

	if atEOF {
		if _, err := t.u.Flush(nil); err != nil {
			return nDst, nSrc, err
		}
	}
	return nDst, nSrc, nil
}

func (t *decodeTransformer) Reset() {
	t.u.Reset()
}

// NewEncoder returns a reader producing the base128 encoding of r
func NewEncoder(alphabet *Alphabet, r io.Reader) io.Reader {
	return transform.NewReader(r, NewEncodeTransformer(alphabet))
}

// NewDecoder returns a reader producing the bytes decoded from the base128 stream r
func NewDecoder(alphabet *Alphabet, r io.Reader) io.Reader {
	return transform.NewReader(r, NewDecodeTransformer(alphabet))
}

// NewWriter returns a writer which encodes everything written to it into w. The last symbol is only
// written on Close, which does not close w.
func NewWriter(alphabet *Alphabet, w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, NewEncodeTransformer(alphabet))
}
