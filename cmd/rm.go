package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/google/subcommands"
)

type rmCmd struct {
	ledgerFlags
	index int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded clear" }
func (*rmCmd) Usage() string {
	return `drops rm -b <boss> -l <difficulty> -i <entry>

  Deletes the entry number <entry>, as listed by 'drops log'.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.IntVar(&c.index, "i", 0, "The entry number, as listed by 'drops log'.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := openLedger(c.boss, c.difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := l.Remove(c.index - 1); err != nil {
		fmt.Fprintf(os.Stderr, "Error: no entry %d: %v\n", c.index, err)
		return subcommands.ExitUsageError
	}
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	k := drops.Key{Activity: c.boss, Difficulty: c.difficulty}
	fmt.Printf("Deleted entry %d of %s\n", c.index, ledgerName(s.Catalog(), k))
	return subcommands.ExitSuccess
}
