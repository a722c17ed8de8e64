package codec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// AlphabetSize is the number of symbols in every alphabet: one per 7-bit value
	AlphabetSize = 128

	cbLatin1Base64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	/*
	 * Don't use '-' (restricted to middle of labels), prefer iso_8859-1
	 * accent chars since they might readily be entered in normal use,
	 * don't use 254-255 because of possible function overloading in DNS systems.
	 */
	cbIodine = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

// Alphabet is an immutable, order-preserving bijection between the values 0..127 and the bytes
// used to transport them.
type Alphabet struct {
	name   string
	encode [AlphabetSize]byte
	decode [256]int16
}

var (
	// Raw writes every value as the byte with the same numeric value. This is the 7-bit clean wire format.
	Raw = mustAlphabet("raw", rawSymbols())

	// Latin1 uses the base64 characters followed by the upper half of the Latin-1 table.
	Latin1 = mustAlphabet("latin1", cbLatin1Base64+latin1Range(192, 256))

	// Iodine is the DNS-label safe alphabet used by the iodine tunnel.
	Iodine = mustAlphabet("iodine", cbIodine)

	alphabets = map[string]*Alphabet{
		Raw.name:    Raw,
		Latin1.name: Latin1,
		Iodine.name: Iodine,
	}
)

// NewAlphabet creates a new alphabet from exactly 128 distinct symbols. The position of the symbol
// in the string is the value it represents.
func NewAlphabet(name string, symbols string) (*Alphabet, error) {
	if len(symbols) != AlphabetSize {
		return nil, errors.Errorf("alphabet %q has %d symbols, need exactly %d", name, len(symbols), AlphabetSize)
	}

	a := &Alphabet{name: name}
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		s := symbols[i]
		if a.decode[s] >= 0 {
			return nil, errors.Errorf("alphabet %q repeats symbol 0x%02x at positions %d and %d", name, s, a.decode[s], i)
		}
		a.encode[i] = s
		a.decode[s] = int16(i)
	}
	return a, nil
}

func mustAlphabet(name string, symbols string) *Alphabet {
	a, err := NewAlphabet(name, symbols)
	if err != nil {
		panic(err)
	}
	return a
}

func rawSymbols() string {
	b := make([]byte, AlphabetSize)
	for i := range b {
		b[i] = byte(i)
	}
	return string(b)
}

func latin1Range(from, to int) string {
	b := make([]byte, 0, to-from)
	for i := from; i < to; i++ {
		b = append(b, byte(i))
	}
	return string(b)
}

// Lookup returns a well-known alphabet by its (case-insensitive) name
func Lookup(name string) (*Alphabet, error) {
	if a, ok := alphabets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return nil, errors.Errorf("unknown alphabet %q, expected one of: %s", name, strings.Join(AlphabetNames(), ", "))
}

// AlphabetNames lists the names accepted by Lookup, sorted
func AlphabetNames() []string {
	names := make([]string, 0, len(alphabets))
	for n := range alphabets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a *Alphabet) Name() string {
	return a.name
}

func (a *Alphabet) String() string {
	return fmt.Sprintf("Alphabet(%v)", a.name)
}

// Symbol returns the byte which represents value v. Only the low 7 bits of v are used.
func (a *Alphabet) Symbol(v byte) byte {
	return a.encode[v&0x7f]
}

// Value returns the value represented by symbol s, and false if s is not part of this alphabet
func (a *Alphabet) Value(s byte) (byte, bool) {
	v := a.decode[s]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}

// Symbols returns a copy of the symbol table, indexed by value
func (a *Alphabet) Symbols() []byte {
	res := make([]byte, AlphabetSize)
	copy(res, a.encode[:])
	return res
}
