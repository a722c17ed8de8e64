package alphabet

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bokysan/base128/internal/codec"
	"github.com/olekukonko/tablewriter"
)

// columns is the number of value/symbol pairs printed side by side
const columns = 4

// Command prints the symbol table of an alphabet
type Command struct {
	Args struct {
		Name string `positional-arg-name:"name" description:"Alphabet to print: raw, latin1 or iodine (default raw)"`
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
	alphabet := codec.Raw
	if c.Args.Name != "" {
		var err error
		if alphabet, err = codec.Lookup(c.Args.Name); err != nil {
			return err
		}
	}
	Print(c.out, alphabet)
	return nil
}

// Print renders the alphabet as a table of values and the symbols representing them
func Print(w io.Writer, alphabet *codec.Alphabet) {
	table := tablewriter.NewWriter(w)

	header := make([]string, 0, columns*2)
	for i := 0; i < columns; i++ {
		header = append(header, "Value", "Symbol")
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetCaption(true, fmt.Sprintf("%v alphabet", alphabet.Name()))

	rows := codec.AlphabetSize / columns
	for r := 0; r < rows; r++ {
		row := make([]string, 0, columns*2)
		for col := 0; col < columns; col++ {
			v := byte(col*rows + r)
			s := alphabet.Symbol(v)
			row = append(row, strconv.Itoa(int(v)), fmt.Sprintf("%s 0x%02x", strconv.QuoteRune(rune(s)), s))
		}
		table.Append(row)
	}
	table.Render()
}
