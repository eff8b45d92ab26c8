package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
)

// ledgerFlags select a ledger.
type ledgerFlags struct {
	boss       string
	difficulty string
}

func (p *ledgerFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.boss, "b", "", "The boss id, see 'drops catalog'.")
	f.StringVar(&p.difficulty, "l", "", "The difficulty id, see 'drops catalog'.")
}

// entryFlags are the fields of an entry.
type entryFlags struct {
	ledgerFlags
	date          string
	clearSize     int
	drop          int
	greed         int
	personalDrop  int
	personalGreed int
	notes         string
}

func (p *entryFlags) SetFlags(f *flag.FlagSet) {
	p.ledgerFlags.SetFlags(f)
	f.StringVar(&p.date, "d", "0d", "The date of the clear. See the user manual for supported date formats.")
	f.IntVar(&p.clearSize, "n", 1, "The party size.")
	f.IntVar(&p.drop, "drop", 0, "The drop rate of the party, in percent.")
	f.IntVar(&p.greed, "greed", 0, "The greed rate of the party, in percent.")
	f.IntVar(&p.personalDrop, "pdrop", 0, "The personal drop rate, in percent.")
	f.IntVar(&p.personalGreed, "pgreed", 0, "The personal greed rate, in percent.")
	f.StringVar(&p.notes, "notes", "", "Free text notes, without commas.")
}

// apply sets the fields of e from the flags. When only is not nil, only
// the flags it contains are applied.
func (p *entryFlags) apply(e *drops.Entry, only map[string]bool) error {
	set := func(name string) bool { return only == nil || only[name] }
	if set("d") {
		d, err := date.ParseInput(p.date)
		if err != nil {
			return err
		}
		e.Date = d
	}
	if set("n") {
		e.ClearSize = p.clearSize
	}
	if set("drop") {
		e.Drop = p.drop
	}
	if set("greed") {
		e.Greed = p.greed
	}
	if set("pdrop") {
		e.PersonalDrop = p.personalDrop
	}
	if set("pgreed") {
		e.PersonalGreed = p.personalGreed
	}
	if set("notes") {
		e.Notes = p.notes
	}
	return nil
}

// visited returns the names of the flags set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	names := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { names[fl.Name] = true })
	return names
}

// parseCounts parses "category=count" arguments. A category alone counts
// one drop.
func parseCounts(l *drops.Ledger, args []string) (map[drops.CategoryID]int, error) {
	counts := make(map[drops.CategoryID]int)
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		id := drops.CategoryID(name)
		if !l.HasCategory(id) {
			return nil, fmt.Errorf("%q is not a reward of this boss, want one of %v", name, l.Categories())
		}
		n := 1
		if found {
			var err error
			if n, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("invalid count for %q: %w", name, err)
			}
		}
		counts[id] = n
	}
	return counts, nil
}

// validateEntry checks what the ledger file cannot represent or what makes
// no sense in a clear.
func validateEntry(e drops.Entry) error {
	if e.ClearSize < 1 {
		return fmt.Errorf("the party size must be at least 1, got %d", e.ClearSize)
	}
	for name, v := range map[string]int{"drop": e.Drop, "greed": e.Greed, "pdrop": e.PersonalDrop, "pgreed": e.PersonalGreed} {
		if v < 0 {
			return fmt.Errorf("-%s must not be negative, got %d", name, v)
		}
	}
	for id, n := range e.Counts {
		if n < 0 {
			return fmt.Errorf("the count of %q must not be negative, got %d", id, n)
		}
	}
	if strings.ContainsAny(e.Notes, ",\r\n") {
		return fmt.Errorf("notes must not contain commas or line breaks")
	}
	return nil
}

// ledgerName returns the display name of a ledger, like "Hard Lotus".
func ledgerName(c *drops.Catalog, k drops.Key) string {
	name := k.Activity
	if a := c.Activity(k.Activity); a != nil {
		name = a.Name
	}
	return drops.DifficultyName(k.Difficulty) + " " + name
}
