package drops

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrUnknownLedger is returned when an activity or difficulty is not in the catalog.
var ErrUnknownLedger = errors.New("unknown activity or difficulty")

// Key identifies a ledger: an activity at a difficulty.
type Key struct {
	Activity   string
	Difficulty string
}

// String returns the key as it appears in a section title.
func (k Key) String() string { return k.Activity + "," + k.Difficulty }

// Book holds one Ledger per activity and difficulty of a catalog, and the
// tables that could not be read.
type Book struct {
	catalog *Catalog
	keys    []Key // catalog order
	ledgers map[Key]*Ledger
	invalid []string
}

// NewBook creates a book with an empty ledger for every schema of the catalog.
func NewBook(c *Catalog) *Book {
	b := &Book{catalog: c, ledgers: make(map[Key]*Ledger)}
	for _, a := range c.Activities() {
		for _, s := range a.Difficulties {
			k := Key{a.ID, s.Difficulty}
			b.keys = append(b.keys, k)
			b.ledgers[k] = NewLedger(c, s)
		}
	}
	return b
}

// Catalog returns the catalog of the book.
func (b *Book) Catalog() *Catalog { return b.catalog }

// Ledger returns the ledger of an activity at a difficulty.
func (b *Book) Ledger(activity, difficulty string) (*Ledger, error) {
	l, ok := b.ledgers[Key{activity, difficulty}]
	if !ok {
		return nil, fmt.Errorf("%w: %s,%s", ErrUnknownLedger, activity, difficulty)
	}
	return l, nil
}

// Ledgers iterates over all ledgers in catalog order.
func (b *Book) Ledgers() iter.Seq2[Key, *Ledger] {
	return func(yield func(Key, *Ledger) bool) {
		for _, k := range b.keys {
			if !yield(k, b.ledgers[k]) {
				return
			}
		}
	}
}

// InvalidTables returns the sections that could not be read, verbatim.
func (b *Book) InvalidTables() []string { return slices.Clone(b.invalid) }

// AddInvalidTable keeps a section that could not be read so that it is
// written back on save.
func (b *Book) AddInvalidTable(raw string) { b.invalid = append(b.invalid, raw) }

// Len returns the number of entries in all ledgers.
func (b *Book) Len() int {
	n := 0
	for _, l := range b.ledgers {
		n += l.Len()
	}
	return n
}
