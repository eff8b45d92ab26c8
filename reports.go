package drops

import (
	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rate is a number of drops over a number of weighted trials.
type Rate struct {
	Count  int
	Trials decimal.Decimal
}

// Percent returns the drop rate in percent, false if there were no trials.
func (r Rate) Percent() (decimal.Decimal, bool) {
	if r.Trials.IsZero() {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(r.Count)).Mul(hundred).DivRound(r.Trials, 4), true
}

var titleCase = cases.Title(language.English)

// DifficultyName returns the display name of a difficulty id.
func DifficultyName(difficulty string) string { return titleCase.String(difficulty) }

// CategoryRate is the rate of one category in a LedgerReport.
type CategoryRate struct {
	ID   CategoryID
	Name string
	Rate
}

// LedgerReport holds the statistics of one ledger over a range of dates.
type LedgerReport struct {
	Key        Key
	Activity   string // display name
	Difficulty string // display name
	Range      date.Range
	Entries    int

	Clears        decimal.Decimal
	Drop          decimal.Decimal
	Equip         decimal.Decimal
	Personal      decimal.Decimal
	PersonalEquip decimal.Decimal

	Categories []CategoryRate
}

// NewLedgerReport computes the statistics of the entries of l dated in r.
func NewLedgerReport(c *Catalog, k Key, l *Ledger, r date.Range) *LedgerReport {
	sub := l
	if !r.IsZero() {
		sub = l.SubLedger(r.From, r.To)
	}
	report := &LedgerReport{
		Key:        k,
		Activity:   k.Activity,
		Difficulty: DifficultyName(k.Difficulty),
		Range:      r,
		Entries:    sub.Len(),
	}
	if a := c.Activity(k.Activity); a != nil {
		report.Activity = a.Name
	}
	report.Clears, _ = sub.Trials(Clears)
	report.Drop, _ = sub.Trials(Drop)
	report.Equip, _ = sub.Trials(Equip)
	report.Personal, _ = sub.Trials(Personal)
	report.PersonalEquip, _ = sub.Trials(PersonalEquip)

	for _, reward := range l.Schema().Rewards {
		count, _ := sub.Total(reward.ID)
		trials, _ := sub.Trials(TrialKind(reward.ID))
		report.Categories = append(report.Categories, CategoryRate{
			ID:   reward.ID,
			Name: c.RewardName(reward),
			Rate: Rate{Count: count, Trials: trials},
		})
	}
	return report
}

// SummaryRow is the rate of a category in one ledger.
type SummaryRow struct {
	Key   Key
	Label string // "Difficulty Activity (clarifier)"
	Rate
	// Excluded rows are not part of the section total.
	Excluded bool
}

// SummarySection is the rate of one category across all ledgers.
type SummarySection struct {
	Category *Category
	Rows     []SummaryRow
	// Total is nil for categories without a grand total.
	Total *Rate
}

// Summary holds the rate of every category across all ledgers of a book.
type Summary struct {
	Range    date.Range
	Sections []SummarySection
}

// NewSummary computes the rate of every category, in every ledger that has
// entries dated in r.
func NewSummary(b *Book, r date.Range) *Summary {
	c := b.Catalog()

	type source struct {
		key    Key
		name   string
		ledger *Ledger
	}
	var sources []source
	for k, l := range b.Ledgers() {
		if !r.IsZero() {
			l = l.SubLedger(r.From, r.To)
		}
		if l.Len() == 0 {
			continue
		}
		name := k.Activity
		if a := c.Activity(k.Activity); a != nil {
			name = a.Name
		}
		sources = append(sources, source{k, name, l})
	}

	s := &Summary{Range: r}
	for _, cat := range c.Categories() {
		section := SummarySection{Category: cat}
		total := Rate{Trials: decimal.Zero}
		for _, src := range sources {
			reward, ok := src.ledger.Schema().Reward(cat.ID)
			if !ok {
				continue
			}
			label := DifficultyName(src.key.Difficulty) + " " + src.name
			if reward.Clarifier != "" {
				label += " (" + reward.Clarifier + ")"
			}
			count, _ := src.ledger.Total(cat.ID)
			trials, _ := src.ledger.Trials(TrialKind(cat.ID))
			row := SummaryRow{
				Key:      src.key,
				Label:    label,
				Rate:     Rate{Count: count, Trials: trials},
				Excluded: reward.ExcludeFromTotal,
			}
			section.Rows = append(section.Rows, row)
			if !row.Excluded {
				total.Count += count
				total.Trials = total.Trials.Add(trials)
			}
		}
		if !cat.SkipTotal {
			section.Total = &total
		}
		s.Sections = append(s.Sections, section)
	}
	return s
}
