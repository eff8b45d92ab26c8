package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export every clear as JSON lines" }
func (*exportCmd) Usage() string {
	return `drops export [-o <file>]

  Writes every recorded clear as one JSON object per line, for use in other
  tools.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output == "" {
		return c.export(os.Stdout, s.Book())
	}
	var sb strings.Builder
	if status := c.export(&sb, s.Book()); status != subcommands.ExitSuccess {
		return status
	}
	if err := fileSystem.WriteAll(c.output, sb.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) export(w io.Writer, b *drops.Book) subcommands.ExitStatus {
	if err := drops.ExportJSONL(w, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
