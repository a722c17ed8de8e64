package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/base128/internal/commands/transcode"
	"github.com/bokysan/base128/internal/dispatch"
	"github.com/bokysan/base128/internal/logging"
)

// Command checks that files survive an encode/decode round trip unchanged
type Command struct {
	transcode.Options `yaml:",inline"`

	Args struct {
		Files []string `positional-arg-name:"file" required:"1" description:"Files to verify"`
	} `positional-args:"yes"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: os.Stdout,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	opts, err := c.DispatchOptions()
	if err != nil {
		return err
	}

	for _, file := range c.Args.Files {
		res, err := dispatch.Verify(file, opts...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.out, "OK %v\n", res); err != nil {
			return err
		}
	}
	return nil
}
