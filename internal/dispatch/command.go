package dispatch

import (
	"fmt"
	"strings"

	"github.com/bokysan/base128/internal/codec"
	"github.com/pkg/errors"
)

// Command selects the direction of the transform
type Command int

const (
	// Encode turns arbitrary bytes into base128 symbols
	Encode Command = iota + 1
	// Decode turns base128 symbols back into the original bytes
	Decode
)

var commandNames = map[Command]string{
	Encode: "encode",
	Decode: "decode",
}

// ErrUnknownCommand is matched (via errors.Is) when a command token is neither encode nor decode
var ErrUnknownCommand = errors.New("unknown command")

// UnknownCommandError carries the rejected command token
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%v %q, expected %q or %q", ErrUnknownCommand, e.Command, Encode, Decode)
}

// Is makes UnknownCommandError match ErrUnknownCommand
func (e *UnknownCommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}

// ParseCommand converts a command token into a Command. Matching ignores case and surrounding blanks.
func ParseCommand(s string) (Command, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for c, name := range commandNames {
		if name == token {
			return c, nil
		}
	}
	return 0, errors.WithStack(&UnknownCommandError{Command: s})
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Valid returns true for Encode and Decode
func (c Command) Valid() bool {
	_, ok := commandNames[c]
	return ok
}

// NewStream returns a fresh transform state for this direction
func (c Command) NewStream(alphabet *codec.Alphabet) (codec.Stream, error) {
	switch c {
	case Encode:
		return codec.NewPacker(alphabet), nil
	case Decode:
		return codec.NewUnpacker(alphabet), nil
	default:
		return nil, errors.WithStack(&UnknownCommandError{Command: c.String()})
	}
}
