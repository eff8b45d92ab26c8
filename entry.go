package drops

import (
	"maps"

	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
)

// Entry is one recorded clear of a boss.
type Entry struct {
	Date      date.Date
	ClearSize int // party size

	// Drop rates, in percent.
	Drop          int
	Greed         int
	PersonalDrop  int
	PersonalGreed int

	// Counts holds the number of drops per category. A ledger only accepts
	// entries that have a count for every category of its schema.
	Counts map[CategoryID]int
	Notes  string
	// Unknown holds the raw text of columns the ledger does not know about.
	Unknown map[string]string
}

// clone returns a deep copy of e.
func (e Entry) clone() Entry {
	e.Counts = maps.Clone(e.Counts)
	e.Unknown = maps.Clone(e.Unknown)
	return e
}

// Count returns the count of a category, zero if absent.
func (e Entry) Count(id CategoryID) int { return e.Counts[id] }
