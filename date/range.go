package date

import "fmt"

// Range represents a half-open range of dates [From, To).
//
// A zero From or To leaves that side unbounded.
type Range struct{ From, To Date }

// NewRange returns the range covering the period that contains d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period).Add(1)}
}

// Contains returns true if d is in the range.
func (r Range) Contains(d Date) bool {
	return (r.From.IsZero() || !d.Before(r.From)) && (r.To.IsZero() || d.Before(r.To))
}

// IsZero returns true if the range is unbounded on both sides.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Last returns the last day included in the range, or the zero date if the
// range has no upper bound.
func (r Range) Last() Date {
	if r.To.IsZero() {
		return Date{}
	}
	return r.To.Add(-1)
}

// String describes the range for report titles.
func (r Range) String() string {
	switch {
	case r.IsZero():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.Last())
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From)
	case r.From == r.Last():
		return r.From.String()
	default:
		return fmt.Sprintf("%s to %s", r.From, r.Last())
	}
}
