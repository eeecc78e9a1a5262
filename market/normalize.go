package market

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts are tried in order when Normalize is called without layouts.
var DateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Normalize parses the date of every record and derives year, month and
// day. The first date that matches none of the layouts is an error.
func Normalize(recs []PriceRecord, layouts ...string) ([]Record, error) {
	if len(layouts) == 0 {
		layouts = DateLayouts
	}

	out := make([]Record, 0, len(recs))
	for i, pr := range recs {
		t, err := parseDate(pr.Date, layouts)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, Record{
			PriceRecord: pr,
			Time:        t,
			Year:        t.Year(),
			Month:       t.Month(),
			Day:         t.Day(),
		})
	}
	return out, nil
}

func parseDate(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}
