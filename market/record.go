package market

import "time"

// PriceRecord is one trading day of an instrument as it appears in the
// source file. Extra holds any further numeric columns (such as
// "Adj Close") in file order, named by their header.
type PriceRecord struct {
	Date   string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	Extra  []Indicator
}

// Record is a PriceRecord with its calendar fields derived once at load
// time.
type Record struct {
	PriceRecord
	Time  time.Time
	Year  int
	Month time.Month
	Day   int
}

// MonthlySummary is the OHLC summary of one calendar month. Month is the
// first day of the month in UTC.
type MonthlySummary struct {
	Month time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Days  int
}

// Increasing reports whether the month closed at or above its open.
func (m MonthlySummary) Increasing() bool {
	return m.Close >= m.Open
}

// Series holds the normalized records of a single instrument.
type Series struct {
	Symbol  string
	Name    string
	Records []Record
}
