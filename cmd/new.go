package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/google/subcommands"
)

type newCmd struct {
	force bool
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create an empty ledger file and use it" }
func (*newCmd) Usage() string {
	return `drops new [-f] <path>

  Creates an empty ledger file at <path> and records it in the settings as
  the ledger file to use.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite the file if it exists.")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: new takes exactly one path.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	exists, err := fileSystem.Exists(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if exists && !c.force {
		fmt.Fprintf(os.Stderr, "Error: %q already exists, use -f to overwrite it.\n", path)
		return subcommands.ExitFailure
	}

	catalog, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s := drops.NewStore(fileSystem, Settings(), catalog)
	if err := s.CreateNew(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created %s\n", path)
	return subcommands.ExitSuccess
}
