package market

// Indicator is one (name, value) pair of a melted record.
type Indicator struct {
	Name  string
	Value float64
}

// Melt reshapes a record into its price indicators: open, high, low,
// close, then the extra numeric columns in file order. Date and volume
// are dropped.
func Melt(r PriceRecord) []Indicator {
	out := make([]Indicator, 0, 4+len(r.Extra))
	out = append(out,
		Indicator{Name: "open", Value: r.Open},
		Indicator{Name: "high", Value: r.High},
		Indicator{Name: "low", Value: r.Low},
		Indicator{Name: "close", Value: r.Close},
	)
	return append(out, r.Extra...)
}
