package cmd

import (
	"flag"
	"fmt"

	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
)

// rangeFlags select the dates a report covers.
type rangeFlags struct {
	period string
	on     string
	start  string
	end    string
}

func (p *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Report on the period (day, week, month, quarter, year) containing -d.")
	f.StringVar(&p.on, "d", "0d", "Date used with -p. See the user manual for supported date formats.")
	f.StringVar(&p.start, "s", "", "First date of the report, included.")
	f.StringVar(&p.end, "e", "", "Last date of the report, included.")
}

// parseRange returns the range of dates selected by the flags, all time by
// default.
func (p *rangeFlags) parseRange() (date.Range, error) {
	if p.period != "" {
		if p.start != "" || p.end != "" {
			return date.Range{}, fmt.Errorf("-p cannot be combined with -s or -e")
		}
		period, err := date.ParsePeriod(p.period)
		if err != nil {
			return date.Range{}, err
		}
		on, err := date.ParseInput(p.on)
		if err != nil {
			return date.Range{}, err
		}
		return date.NewRange(on, period), nil
	}

	var r date.Range
	if p.start != "" {
		d, err := date.ParseInput(p.start)
		if err != nil {
			return date.Range{}, err
		}
		r.From = d
	}
	if p.end != "" {
		d, err := date.ParseInput(p.end)
		if err != nil {
			return date.Range{}, err
		}
		r.To = d.Add(1)
	}
	if !r.From.IsZero() && !r.To.IsZero() && !r.From.Before(r.To) {
		return date.Range{}, fmt.Errorf("the start date %s is after the end date %s", r.From, r.Last())
	}
	return r, nil
}
