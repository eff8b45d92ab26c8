package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// fmtCmd rewrites the ledger file in its canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `drops fmt

  Reads the ledger file and writes it back: one table per boss and
  difficulty, columns in the catalog order, zero counts left blank. Tables
  and rows that cannot be read are kept at the end of their section.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	b := s.Book()
	rows := 0
	for k, l := range b.Ledgers() {
		if n := len(l.InvalidRows()); n > 0 {
			log.Warn().Str("ledger", k.String()).Int("rows", n).Msg("unreadable-rows")
			rows += n
		}
	}
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s: %d entries, %d unreadable rows, %d unreadable tables\n",
		s.Path(), b.Len(), rows, len(b.InvalidTables()))
	return subcommands.ExitSuccess
}
