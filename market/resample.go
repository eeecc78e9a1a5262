package market

import (
	"sort"
	"time"
)

// ResampleMonthly groups records by calendar month. Open comes from the
// first record of the month and Close from the last; High and Low are the
// extrema. Records are ordered by time with a stable sort so records
// sharing a timestamp keep their input order. Months without records are
// not emitted.
func ResampleMonthly(recs []Record) []MonthlySummary {
	if len(recs) == 0 {
		return []MonthlySummary{}
	}

	sorted := make([]Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	var out []MonthlySummary
	var cur *MonthlySummary
	for _, r := range sorted {
		month := monthStart(r.Time)
		if cur == nil || !cur.Month.Equal(month) {
			out = append(out, MonthlySummary{
				Month: month,
				Open:  r.Open,
				High:  r.High,
				Low:   r.Low,
			})
			cur = &out[len(out)-1]
		}
		if r.High > cur.High {
			cur.High = r.High
		}
		if r.Low < cur.Low {
			cur.Low = r.Low
		}
		cur.Close = r.Close
		cur.Days++
	}
	return out
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
