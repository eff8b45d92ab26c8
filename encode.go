package drops

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
	"github.com/rs/zerolog/log"
)

// This file contains the codec of the .mcsv ledger file.
//
// The file is a list of sections separated by a blank line. Each section is
// one ledger: a title line "activity,difficulty", a header line with column
// names, then one row per entry. Anything that cannot be read is kept
// verbatim (a whole section as an invalid table, a single row as an invalid
// row) and written back on save, so that no input is ever lost.

// Column names.
const (
	colDate          = "date"
	colClearSize     = "clear_size"
	colDrop          = "drop"
	colGreed         = "greed"
	colPersonalDrop  = "personal_drop"
	colPersonalGreed = "personal_greed"
	colNotes         = "notes"
)

// requiredColumns must all be present in a section header.
var requiredColumns = []string{colDate, colClearSize, colDrop, colGreed, colPersonalDrop, colPersonalGreed}

const (
	lineSep    = "\r\n"
	sectionSep = lineSep + lineSep
)

var (
	sectionSplit = regexp.MustCompile(`\r?\n\r?\n`)
	lineSplit    = regexp.MustCompile(`\r?\n`)
)

// DecodeBook reads a ledger file into a new book of the catalog.
//
// Only read errors are returned: malformed sections and rows are kept in the
// book as invalid tables and invalid rows.
func DecodeBook(c *Catalog, r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file: %w", err)
	}
	b := NewBook(c)
	text := string(data)
	if text == "" {
		return b, nil
	}
	for _, section := range sectionSplit.Split(text, -1) {
		if err := decodeSection(b, section); err != nil {
			log.Warn().Err(err).Msg("invalid-table")
			b.AddInvalidTable(section)
		}
	}
	return b, nil
}

// decodeSection reads one section into its ledger. It returns an error,
// without touching the book, when the section cannot be read as a whole.
func decodeSection(b *Book, section string) error {
	lines := lineSplit.Split(section, -1)

	// Extra title fields are not ignored: such a section is kept verbatim
	// rather than merged into a ledger it may not belong to.
	title := strings.Split(lines[0], ",")
	if len(title) != 2 {
		return fmt.Errorf("invalid section title %q", lines[0])
	}
	l, err := b.Ledger(title[0], title[1])
	if err != nil {
		return err
	}
	if len(lines) < 2 {
		return fmt.Errorf("section %q has no header", lines[0])
	}

	header := strings.Split(lines[1], ",")
	for i, name := range header {
		if slices.Contains(header[:i], name) {
			return fmt.Errorf("section %q: duplicate column %q", lines[0], name)
		}
	}
	for _, name := range requiredColumns {
		if !slices.Contains(header, name) {
			return fmt.Errorf("section %q: missing column %q", lines[0], name)
		}
	}

	var unknown []string
	for _, name := range header {
		if isFixedColumn(name) || l.HasCategory(CategoryID(name)) {
			continue
		}
		if !l.isUnknownColumn(name) {
			return fmt.Errorf("section %q: invalid column name %q", lines[0], name)
		}
		unknown = append(unknown, name)
	}
	l.AssignUnknown(unknown)

	for _, row := range lines[2:] {
		e, err := decodeRow(l, header, row)
		if err != nil {
			log.Warn().Err(err).Str("ledger", lines[0]).Msg("invalid-row")
			l.RecordInvalidRow(row)
			continue
		}
		l.Insert(e)
	}
	return nil
}

func isFixedColumn(name string) bool {
	return name == colNotes || slices.Contains(requiredColumns, name)
}

// decodeRow reads one row. Categories missing from the header count zero.
func decodeRow(l *Ledger, header []string, row string) (Entry, error) {
	cells := strings.Split(row, ",")
	if len(cells) != len(header) {
		return Entry{}, fmt.Errorf("row %q has %d columns, want %d", row, len(cells), len(header))
	}

	e := Entry{Counts: make(map[CategoryID]int)}
	for _, id := range l.Categories() {
		e.Counts[id] = 0
	}

	for i, name := range header {
		cell := cells[i]
		var err error
		switch name {
		case colDate:
			e.Date, err = date.Parse(cell)
		case colClearSize:
			e.ClearSize, err = parseCount(cell)
		case colDrop:
			e.Drop, err = parseCount(cell)
		case colGreed:
			e.Greed, err = parseCount(cell)
		case colPersonalDrop:
			e.PersonalDrop, err = parseCount(cell)
		case colPersonalGreed:
			e.PersonalGreed, err = parseCount(cell)
		case colNotes:
			e.Notes = cell
		default:
			id := CategoryID(name)
			if l.HasCategory(id) {
				e.Counts[id], err = parseCount(cell)
				break
			}
			if e.Unknown == nil {
				e.Unknown = make(map[string]string)
			}
			e.Unknown[name] = cell
		}
		if err != nil {
			return Entry{}, fmt.Errorf("column %q: %w", name, err)
		}
	}
	return e, nil
}

// parseCount parses an integer cell, the empty cell is zero.
func parseCount(cell string) (int, error) {
	if cell == "" {
		return 0, nil
	}
	return strconv.Atoi(cell)
}

// formatCount formats an integer cell, zero is the empty cell.
func formatCount(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// EncodeBook writes the book in the ledger file format.
//
// Ledgers with no entries and no invalid rows are omitted. Invalid tables
// come last.
func EncodeBook(w io.Writer, b *Book) error {
	var sections []string
	for k, l := range b.Ledgers() {
		if l.Len() == 0 && len(l.invalid) == 0 {
			continue
		}
		sections = append(sections, encodeLedger(k, l))
	}
	sections = append(sections, b.invalid...)

	if _, err := io.WriteString(w, strings.Join(sections, sectionSep)); err != nil {
		return fmt.Errorf("cannot write ledger file: %w", err)
	}
	return nil
}

// encodeLedger returns the section of one ledger.
func encodeLedger(k Key, l *Ledger) string {
	categories := l.Categories()

	header := []string{colDate, colClearSize}
	for _, id := range categories {
		header = append(header, string(id))
	}
	header = append(header, colDrop, colGreed, colPersonalDrop, colPersonalGreed, colNotes)
	header = append(header, l.unknown...)

	lines := []string{k.String(), strings.Join(header, ",")}
	cells := make([]string, 0, len(header))
	for _, e := range l.entries {
		cells = cells[:0]
		cells = append(cells, e.Date.String(), formatCount(e.ClearSize))
		for _, id := range categories {
			cells = append(cells, formatCount(e.Counts[id]))
		}
		cells = append(cells,
			formatCount(e.Drop),
			formatCount(e.Greed),
			formatCount(e.PersonalDrop),
			formatCount(e.PersonalGreed),
			e.Notes,
		)
		for _, name := range l.unknown {
			cells = append(cells, e.Unknown[name])
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	lines = append(lines, l.invalid...)
	return strings.Join(lines, lineSep)
}
