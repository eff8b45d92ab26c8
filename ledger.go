package drops

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
	"github.com/shopspring/decimal"
)

// ErrIndex is returned when an entry index is out of range.
var ErrIndex = errors.New("entry index out of range")

// Ledger is the list of entries of one boss at one difficulty, and the drop
// statistics computed from them.
//
// Statistics are updated on every Insert, Replace and Remove so that they
// always equal a recomputation over the current entries.
type Ledger struct {
	catalog *Catalog
	schema  *Schema
	rules   []rule // in schema order

	entries []Entry
	unknown []string // nil until assigned
	invalid []string

	sums   weights
	totals map[CategoryID]int
	trials map[CategoryID]decimal.Decimal // tracked categories only
}

// NewLedger creates an empty ledger for a schema of the catalog.
func NewLedger(c *Catalog, s *Schema) *Ledger {
	l := &Ledger{
		catalog: c,
		schema:  s,
		totals:  make(map[CategoryID]int),
		trials:  make(map[CategoryID]decimal.Decimal),
	}
	for _, r := range s.Rewards {
		ru := c.resolve(r)
		l.rules = append(l.rules, ru)
		l.totals[r.ID] = 0
		if ru.tracked {
			l.trials[r.ID] = decimal.Zero
		}
	}
	return l
}

// Schema returns the schema the ledger was created with.
func (l *Ledger) Schema() *Schema { return l.schema }

// Categories returns the category ids of the ledger, in schema order.
func (l *Ledger) Categories() []CategoryID { return l.schema.Categories() }

// HasCategory returns true if id is a category of the ledger.
func (l *Ledger) HasCategory(id CategoryID) bool {
	_, ok := l.totals[id]
	return ok
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entry returns the entry at index i.
func (l *Ledger) Entry(i int) (Entry, error) {
	if err := l.checkIndex(i); err != nil {
		return Entry{}, err
	}
	return l.entries[i].clone(), nil
}

// Entries iterates over entries in order.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e.clone()) {
				return
			}
		}
	}
}

func (l *Ledger) checkIndex(i int) error {
	if i < 0 || i >= len(l.entries) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, len(l.entries))
	}
	return nil
}

// valid returns true if e is dated and has a count for every category of
// the ledger.
func (l *Ledger) valid(e Entry) bool {
	if e.Date.IsZero() {
		return false
	}
	for _, r := range l.rules {
		if _, ok := e.Counts[r.id]; !ok {
			return false
		}
	}
	return true
}

// Insert appends an entry. It returns false, and leaves the ledger
// untouched, if the entry has no date or lacks a count for one of the
// ledger categories.
func (l *Ledger) Insert(e Entry) bool {
	if !l.valid(e) {
		return false
	}
	e = e.clone()
	l.entries = append(l.entries, e)
	l.fold(e, 1)
	return true
}

// Replace replaces the entry at index i. It returns false, and leaves the
// ledger untouched, if the entry is not valid for Insert.
func (l *Ledger) Replace(i int, e Entry) (bool, error) {
	if err := l.checkIndex(i); err != nil {
		return false, err
	}
	if !l.valid(e) {
		return false, nil
	}
	e = e.clone()
	l.fold(l.entries[i], -1)
	l.entries[i] = e
	l.fold(e, 1)
	return true, nil
}

// Remove deletes the entry at index i.
func (l *Ledger) Remove(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.fold(l.entries[i], -1)
	l.entries = slices.Delete(l.entries, i, i+1)
	return nil
}

// fold adds (sign > 0) or subtracts (sign < 0) the contribution of e to
// every statistic. Folding then unfolding the same entry is exact.
func (l *Ledger) fold(e Entry, sign int) {
	w := entryWeights(e, l.catalog.DropCap(e.Date))
	l.sums = l.sums.add(w, sign)

	for _, r := range l.rules {
		l.totals[r.id] += sign * e.Counts[r.id]
		if !r.tracked {
			continue
		}
		v := r.weight(w, e.Date)
		if sign < 0 {
			v = v.Neg()
		}
		l.trials[r.id] = l.trials[r.id].Add(v)
	}
}

// Total returns the number of drops of a category, false if the category is
// not in the ledger.
func (l *Ledger) Total(id CategoryID) (int, bool) {
	t, ok := l.totals[id]
	return t, ok
}

// Trials returns the weighted trial count for kind, false if kind is
// neither a scalar kind nor a category of the ledger.
func (l *Ledger) Trials(kind TrialKind) (decimal.Decimal, bool) {
	switch kind {
	case Clears:
		return decimal.NewFromInt(int64(l.sums.clears)), true
	case Drop:
		return l.sums.drop, true
	case Equip:
		return l.sums.equip, true
	case Personal:
		return l.sums.personal, true
	case PersonalEquip:
		return l.sums.personalEquip, true
	}

	id := CategoryID(kind)
	if t, ok := l.trials[id]; ok {
		return t, true
	}
	for _, r := range l.rules {
		if r.id == id {
			return l.sums.of(r.basis), true
		}
	}
	return decimal.Zero, false
}

// Unknown returns the names of the columns the ledger does not know about,
// in the order they were first seen.
func (l *Ledger) Unknown() []string { return slices.Clone(l.unknown) }

// AssignUnknown sets the unknown columns. It can only be done once: later
// calls return false.
//
// Names the ledger file cannot hold as an extra column are ignored: the
// fixed columns, the ledger categories, the empty name and names containing
// a comma or a line break.
func (l *Ledger) AssignUnknown(names []string) bool {
	if l.unknown != nil {
		return false
	}
	l.unknown = make([]string, 0, len(names))
	for _, n := range names {
		if l.isUnknownColumn(n) && !slices.Contains(l.unknown, n) {
			l.unknown = append(l.unknown, n)
		}
	}
	return true
}

// isUnknownColumn returns true if name can be written as an unknown column
// of the ledger.
func (l *Ledger) isUnknownColumn(name string) bool {
	return name != "" &&
		!strings.ContainsAny(name, ",\r\n") &&
		!isFixedColumn(name) &&
		!l.HasCategory(CategoryID(name))
}

// InvalidRows returns the rows that could not be read, verbatim.
func (l *Ledger) InvalidRows() []string { return slices.Clone(l.invalid) }

// RecordInvalidRow keeps a row that could not be read so that it is written
// back on save.
func (l *Ledger) RecordInvalidRow(raw string) { l.invalid = append(l.invalid, raw) }

// SubLedger returns a new ledger with only the entries dated in [from, to).
// A zero from or to leaves that side open. l is not modified.
func (l *Ledger) SubLedger(from, to date.Date) *Ledger {
	sub := NewLedger(l.catalog, l.schema)
	r := date.Range{From: from, To: to}
	for _, e := range l.entries {
		if r.Contains(e.Date) {
			sub.Insert(e)
		}
	}
	return sub
}
