package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSymbol is matched (via errors.Is) by every decoding failure caused by the input data
var ErrInvalidSymbol = errors.New("invalid base128 symbol")

// InvalidSymbolError reports where in the encoded stream decoding stopped. The stream is not
// decoded past this point.
type InvalidSymbolError struct {
	Offset int64  // zero-based position of the offending symbol in the encoded stream
	Symbol byte   // the offending symbol
	Reason string // human readable description
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%v 0x%02x at offset %d: %s", ErrInvalidSymbol, e.Symbol, e.Offset, e.Reason)
}

// Is makes InvalidSymbolError match ErrInvalidSymbol
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}
