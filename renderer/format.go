package renderer

import (
	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/shopspring/decimal"
)

// FormatTrials formats a weighted trial count: integers as is, other values
// with two decimals.
func FormatTrials(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}

// FormatFixed formats d with two decimals.
func FormatFixed(d decimal.Decimal) string { return d.StringFixed(2) }

// FormatRate formats a rate as a percentage with two decimals, or "-" when
// there were no trials.
func FormatRate(r drops.Rate) string {
	p, ok := r.Percent()
	if !ok {
		return "-"
	}
	return p.StringFixed(2) + "%"
}
