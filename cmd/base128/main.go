package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/base128/internal/args"
	"github.com/bokysan/base128/internal/commands/alphabet"
	"github.com/bokysan/base128/internal/commands/transcode"
	"github.com/bokysan/base128/internal/commands/verify"
	"github.com/bokysan/base128/internal/commands/version"
	scFlags "github.com/bokysan/base128/internal/flags"
	"github.com/bokysan/base128/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base128 is the main executable
type Base128 struct {
	parser *flags.Parser
}

// NewBase128 will create a new instance of Base128 and initialize the parser
func NewBase128() *Base128 {
	executablePath := path.Base(os.Args[0])

	b := &Base128{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupTranscode("encode", "Encode to base128", "Encode bytes (a file or standard input) into 7-bit base128 symbols")
	b.setupTranscode("decode", "Decode from base128", "Decode base128 symbols (a file or standard input) back into the original bytes")
	b.setupVerify()
	b.setupAlphabet()

	return b
}

// setupGeneral will configure general options
func (b *Base128) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (b *Base128) setupVersion() {
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupTranscode adds the `encode` and `decode` commands. The command name is the token passed to the dispatcher.
func (b *Base128) setupTranscode(name, short, long string) {
	_, err := b.parser.AddCommand(name, short, long, transcode.NewCommand(name))
	util.MustErrorNilOrExit(err)
}

// setupVerify adds the `verify` command
func (b *Base128) setupVerify() {
	_, err := b.parser.AddCommand(
		"verify",
		"Verify a round trip",
		"Encode and decode files in memory-bounded streams and compare the result with the original",
		verify.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupAlphabet adds the `alphabet` command
func (b *Base128) setupAlphabet() {
	_, err := b.parser.AddCommand(
		"alphabet",
		"Print an alphabet",
		"Print the symbol used for every 7-bit value of an alphabet",
		alphabet.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts base128 and reads the configuration file
func main() {
	b := NewBase128()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return scFlags.NewYamlParser(b.parser).ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
