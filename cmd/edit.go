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

type editCmd struct {
	entryFlags
	index int
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change a recorded clear" }
func (*editCmd) Usage() string {
	return `drops edit -b <boss> -l <difficulty> -i <entry> [entry flags] [<reward>[=<count>]...]

  Changes the entry number <entry>, as listed by 'drops log'. Only the flags
  and rewards given are changed.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.entryFlags.SetFlags(f)
	f.IntVar(&c.index, "i", 0, "The entry number, as listed by 'drops log'.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := openLedger(c.boss, c.difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	e, err := l.Entry(c.index - 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: no entry %d: %v\n", c.index, err)
		return subcommands.ExitUsageError
	}
	counts, err := parseCounts(l, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	maps.Copy(e.Counts, counts)
	if err := c.apply(&e, visited(f)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := validateEntry(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ok, err := l.Replace(c.index-1, e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot replace entry %d: %v\n", c.index, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: the entry is missing rewards of this boss.")
		return subcommands.ExitFailure
	}
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	k := drops.Key{Activity: c.boss, Difficulty: c.difficulty}
	fmt.Printf("Changed entry %d of %s\n", c.index, ledgerName(s.Catalog(), k))
	return subcommands.ExitSuccess
}
