package drops

import (
	"fmt"
	"io"
)

// ExportJSONL writes every entry of the book as one JSON object per line,
// ledgers in catalog order and entries in ledger order.
//
// Keys come in a fixed order: activity, difficulty, date, clear_size,
// counts (in schema order), drop, greed, personal_drop, personal_greed,
// then notes and unknown columns when present.
func ExportJSONL(w io.Writer, b *Book) error {
	for k, l := range b.Ledgers() {
		categories := l.Categories()
		unknown := l.Unknown()
		for i, e := range l.Entries() {
			var counts jsonObjectWriter
			for _, id := range categories {
				counts.Append(string(id), e.Count(id))
			}
			var extra jsonObjectWriter
			for _, name := range unknown {
				if v, ok := e.Unknown[name]; ok {
					extra.Append(name, v)
				}
			}

			var obj jsonObjectWriter
			obj.Append("activity", k.Activity).
				Append("difficulty", k.Difficulty).
				Append("date", e.Date).
				Append("clear_size", e.ClearSize).
				Append("counts", &counts).
				Append("drop", e.Drop).
				Append("greed", e.Greed).
				Append("personal_drop", e.PersonalDrop).
				Append("personal_greed", e.PersonalGreed).
				Optional("notes", e.Notes)
			if extra.Len() > 0 {
				obj.Append("unknown", &extra)
			}

			line, err := obj.MarshalJSON()
			if err != nil {
				return fmt.Errorf("cannot export entry %d of %s: %w", i+1, k, err)
			}
			line = append(line, '\n')
			if _, err := w.Write(line); err != nil {
				return fmt.Errorf("cannot export entries: %w", err)
			}
		}
	}
	return nil
}
