package market

import (
	"fmt"
	"time"
)

// YearRange is an inclusive range of calendar years.
type YearRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether start <= year <= end.
func (yr YearRange) Contains(year int) bool {
	return yr.Start <= year && year <= yr.End
}

func (yr YearRange) String() string {
	return fmt.Sprintf("%d-%d", yr.Start, yr.End)
}

// Date is a calendar day used by the exact-date filter.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// FilterYears keeps the records whose year falls in yr, preserving order.
func FilterYears(recs []Record, yr YearRange) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if yr.Contains(r.Year) {
			out = append(out, r)
		}
	}
	return out
}

// FilterDate keeps the records on exactly day d. No match yields an empty
// slice.
func FilterDate(recs []Record, d Date) []Record {
	out := make([]Record, 0, 1)
	for _, r := range recs {
		if r.Year == d.Year && r.Month == d.Month && r.Day == d.Day {
			out = append(out, r)
		}
	}
	return out
}
