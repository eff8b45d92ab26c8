package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blushiemagic/Maplestory-Boss-Drops/renderer"
	"github.com/google/subcommands"
)

type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list bosses, difficulties and rewards" }
func (*catalogCmd) Usage() string {
	return `drops catalog

  Lists the reward categories, the bosses with their difficulties, and the
  drop rate events of the catalog in use.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CatalogMarkdown(catalog))
	return subcommands.ExitSuccess
}
