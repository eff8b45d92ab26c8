package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{
			name:   "A single day",
			in:     New(2025, time.September, 8),
			period: Daily,
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 9)},
		},
		{
			name:   "A Wednesday",
			in:     New(2025, time.September, 10),
			period: Weekly,
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 15)},
		},
		{
			name:   "A leap year",
			in:     New(2024, time.February, 15),
			period: Monthly,
			want:   Range{From: New(2024, time.February, 1), To: New(2024, time.March, 1)},
		},
		{
			name:   "Q2",
			in:     New(2025, time.May, 20),
			period: Quarterly,
			want:   Range{From: New(2025, time.April, 1), To: New(2025, time.July, 1)},
		},
		{
			name:   "A year",
			in:     New(2025, time.September, 8),
			period: Yearly,
			want:   Range{From: New(2025, time.January, 1), To: New(2026, time.January, 1)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	jan := Range{From: New(2024, time.January, 1), To: New(2024, time.February, 1)}
	testCases := []struct {
		name string
		r    Range
		in   Date
		want bool
	}{
		{"From is included", jan, New(2024, time.January, 1), true},
		{"To is excluded", jan, New(2024, time.February, 1), false},
		{"Before", jan, New(2023, time.December, 31), false},
		{"Unbounded", Range{}, New(1990, time.January, 1), true},
		{"Open start", Range{To: New(2024, time.January, 1)}, New(2023, time.December, 31), true},
		{"Open end", Range{From: New(2024, time.January, 1)}, New(2023, time.December, 31), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.in); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tc.r, tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_String(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{Range{}, "all time"},
		{NewRange(New(2024, time.March, 3), Daily), "2024-03-03"},
		{NewRange(New(2024, time.March, 3), Monthly), "2024-03-01 to 2024-03-31"},
		{Range{From: New(2024, time.March, 3)}, "since 2024-03-03"},
		{Range{To: New(2024, time.March, 3)}, "until 2024-03-02"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Range.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Quarterly", "quarterly", Quarterly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Daily", "day", Daily, false},
		{"Weekly", "week", Weekly, false},
		{"Monthly", "Month", Monthly, false},
		{"Quarterly", "quarter", Quarterly, false},
		{"Yearly", "year", Yearly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
