package transcode

import (
	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/dispatch"
	"github.com/bokysan/base128/internal/logging"
	"github.com/pkg/errors"
)

// Options are shared by all commands which run the codec
type Options struct {
	Alphabet  string `json:"alphabet"   short:"a" long:"alphabet"   env:"BASE128_ALPHABET"   description:"Symbol alphabet: raw (7-bit bytes, the default), latin1 or iodine"`
	ChunkSize int    `json:"chunk-size"           long:"chunk-size" env:"BASE128_CHUNK_SIZE" description:"Number of bytes read at once (default 32768)"`
}

// DispatchOptions converts the command line options into dispatcher options
func (o *Options) DispatchOptions() ([]dispatch.Option, error) {
	alphabet := codec.Raw
	if o.Alphabet != "" {
		var err error
		if alphabet, err = codec.Lookup(o.Alphabet); err != nil {
			return nil, err
		}
	}
	if o.ChunkSize < 0 {
		return nil, errors.Errorf("chunk size must not be negative, got %d", o.ChunkSize)
	}
	return []dispatch.Option{
		dispatch.WithAlphabet(alphabet),
		dispatch.WithChunkSize(o.ChunkSize),
	}, nil
}

// Command runs the dispatcher in one direction, selected by the command token it was created with
type Command struct {
	Options `yaml:",inline"`

	Args struct {
		Input  string `positional-arg-name:"input"  description:"File to read. Standard input if omitted or '-'."`
		Output string `positional-arg-name:"output" description:"File to create or truncate. Standard output if omitted or '-'."`
	} `positional-args:"yes"`

	token string
}

// NewCommand creates a command for the given token, "encode" or "decode"
func NewCommand(token string) *Command {
	return &Command{
		token: token,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	opts, err := c.DispatchOptions()
	if err != nil {
		return err
	}
	return dispatch.Run(c.token, c.Args.Input, c.Args.Output, opts...)
}
