package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/blushiemagic/Maplestory-Boss-Drops/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	rangeFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the drop rates of every reward across bosses" }
func (*summaryCmd) Usage() string {
	return `drops summary [-p <period> [-d <date>]] [-s <start>] [-e <end>]

  Displays, for every reward category, its drop rate in every boss that
  has clears in the range, and the total across those bosses.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.parseRange()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderSummary(drops.NewSummary(s.Book(), r)))
	return subcommands.ExitSuccess
}
