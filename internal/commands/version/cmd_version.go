package version

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/base128/internal/codec"
	"github.com/bokysan/base128/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version banner and exits
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion(ansi.NewAnsiStdout())
	os.Exit(0)
	return nil
}

// PrintVersion writes the banner and the build details
//goland:noinspection GoUnhandledErrorResult
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, Bold+BackgroundBlue+
		LightGray+" BASE128 - 7-bit clean binary codec "+White+"%s"+LightGray+" "+Reset+"\n",
		version.AppVersion())
	if version.BuildDate != "" {
		fmt.Fprintf(w, DarkGray+" Built on    "+White+"%+v"+Reset+"\n", version.BuildDate)
	}
	if version.GitCommit != "" {
		fmt.Fprintf(w, DarkGray+" Git version "+White+"%+v"+Reset+"\n", version.GitCommit)
	}
	if version.GitState != "" {
		fmt.Fprintf(w, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(w, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	fmt.Fprintf(w, DarkGray+" Alphabets   "+White+"%+v"+Reset+"\n", codec.AlphabetNames())
}
