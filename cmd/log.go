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

type logCmd struct {
	ledgerFlags
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the recorded clears of a boss" }
func (*logCmd) Usage() string {
	return `drops log -b <boss> -l <difficulty>

  Lists the recorded clears of a boss at a difficulty, numbered as expected
  by 'drops edit' and 'drops rm', and the rows that could not be read.
`
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := openLedger(c.boss, c.difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	k := drops.Key{Activity: c.boss, Difficulty: c.difficulty}
	printMarkdown(renderer.LogMarkdown(s.Catalog(), k, l))
	return subcommands.ExitSuccess
}
