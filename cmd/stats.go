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

type statsCmd struct {
	ledgerFlags
	rangeFlags
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the drop rates of a boss" }
func (*statsCmd) Usage() string {
	return `drops stats -b <boss> -l <difficulty> [-p <period> [-d <date>]] [-s <start>] [-e <end>]

  Displays the weighted number of trials and the drop rate of every reward
  of a boss at a difficulty.

Usage Examples:
$ drops stats -b lotus -l hard -p month
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	c.rangeFlags.SetFlags(f)
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.parseRange()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, l, err := openLedger(c.boss, c.difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	k := drops.Key{Activity: c.boss, Difficulty: c.difficulty}
	printMarkdown(renderer.RenderLedgerReport(drops.NewLedgerReport(s.Catalog(), k, l, r)))
	return subcommands.ExitSuccess
}
