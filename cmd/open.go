package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/google/subcommands"
)

type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "use an existing ledger file" }
func (*openCmd) Usage() string {
	return `drops open <path>

  Reads the ledger file at <path> and records it in the settings as the
  ledger file to use.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: open takes exactly one path.")
		return subcommands.ExitUsageError
	}
	catalog, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s := drops.NewStore(fileSystem, Settings(), catalog)
	if err := s.Load(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened %s: %d entries\n", s.Path(), s.Book().Len())
	return subcommands.ExitSuccess
}
