package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/google/subcommands"
)

type addCmd struct {
	entryFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a clear" }
func (*addCmd) Usage() string {
	return `drops add -b <boss> -l <difficulty> [-d <date>] [-n <party size>] [-drop <%>] [-greed <%>] [-pdrop <%>] [-pgreed <%>] [-notes <text>] [<reward>[=<count>]...]

  Records a clear of a boss. Rewards not listed count zero, a reward listed
  without a count counts one.

Usage Examples:
$ drops add -b lotus -l hard -n 2 -drop 250 -greed 80 pitched
`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := openLedger(c.boss, c.difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	counts, err := parseCounts(l, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := drops.Entry{Counts: make(map[drops.CategoryID]int)}
	for _, id := range l.Categories() {
		e.Counts[id] = 0
	}
	maps.Copy(e.Counts, counts)
	if err := c.apply(&e, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := validateEntry(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if !l.Insert(e) {
		fmt.Fprintln(os.Stderr, "Error: the entry is missing rewards of this boss.")
		return subcommands.ExitFailure
	}
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	k := drops.Key{Activity: c.boss, Difficulty: c.difficulty}
	fmt.Printf("Added entry %d to %s\n", l.Len(), ledgerName(s.Catalog(), k))
	return subcommands.ExitSuccess
}
