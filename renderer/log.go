package renderer

import (
	"fmt"
	"io"
	"strings"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
)

// LogMarkdown renders the entries of a ledger as a table, numbered from 1,
// followed by the rows that could not be read.
func LogMarkdown(c *drops.Catalog, k drops.Key, l *drops.Ledger) string {
	r := &logRenderer{Builder: &strings.Builder{}}

	name := k.Activity
	if a := c.Activity(k.Activity); a != nil {
		name = a.Name
	}
	r.Printf("# %s %s\n\n", drops.DifficultyName(k.Difficulty), name)

	if l.Len() == 0 {
		r.Printf("No entries.\n")
	} else {
		r.renderEntries(c, l)
	}

	ConditionalBlock(r, func(w io.Writer) bool {
		rows := l.InvalidRows()
		fmt.Fprintf(w, "\n## Unreadable Rows\n\n")
		for _, row := range rows {
			fmt.Fprintf(w, "    %s\n", row)
		}
		return len(rows) > 0
	})
	return r.String()
}

// logRenderer formats a ledger into a markdown string.
type logRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *logRenderer) renderEntries(c *drops.Catalog, l *drops.Ledger) {
	rewards := l.Schema().Rewards
	unknown := l.Unknown()

	r.Printf("| # | Date | Clear Size |")
	for _, reward := range rewards {
		r.Printf(" %s |", c.RewardName(reward))
	}
	r.Printf(" Drop | Greed | Personal Drop | Personal Greed | Notes |")
	for _, name := range unknown {
		r.Printf(" %s |", name)
	}
	r.Printf("\n|---:|:---|---:|")
	r.Printf("%s", strings.Repeat("---:|", len(rewards)+4))
	r.Printf(":---|")
	r.Printf("%s\n", strings.Repeat(":---|", len(unknown)))

	for i, e := range l.Entries() {
		r.Printf("| %d | %s | %d |", i+1, e.Date, e.ClearSize)
		for _, reward := range rewards {
			r.Printf(" %d |", e.Count(reward.ID))
		}
		r.Printf(" %d%% | %d%% | %d%% | %d%% | %s |", e.Drop, e.Greed, e.PersonalDrop, e.PersonalGreed, e.Notes)
		for _, name := range unknown {
			r.Printf(" %s |", e.Unknown[name])
		}
		r.Printf("\n")
	}
}
