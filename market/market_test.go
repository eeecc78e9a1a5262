package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, date string, o, h, l, c float64) Record {
	t.Helper()

	recs, err := Normalize([]PriceRecord{{Date: date, Open: o, High: h, Low: l, Close: c, Volume: 100}})
	require.NoError(t, err)
	return recs[0]
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		date  string
		year  int
		month time.Month
		day   int
	}{
		{"2022-03-17", 2022, time.March, 17},
		{"2007/01/03", 2007, time.January, 3},
		{"12/31/2009", 2009, time.December, 31},
		{"2020-02-29 00:00:00", 2020, time.February, 29},
		{" 2021-06-01 ", 2021, time.June, 1},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			recs, err := Normalize([]PriceRecord{{Date: tt.date}})
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, tt.year, recs[0].Year)
			assert.Equal(t, tt.month, recs[0].Month)
			assert.Equal(t, tt.day, recs[0].Day)
			assert.Equal(t, time.UTC, recs[0].Time.Location())
		})
	}
}

func TestNormalizeStrict(t *testing.T) {
	_, err := Normalize([]PriceRecord{{Date: "2022-03-17"}, {Date: "not a date"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")

	_, err = Normalize([]PriceRecord{{Date: "17.03.2022"}}, "2006-01-02")
	assert.Error(t, err)

	recs, err := Normalize([]PriceRecord{{Date: "17.03.2022"}}, "02.01.2006")
	require.NoError(t, err)
	assert.Equal(t, 17, recs[0].Day)
}

func TestFilterYears(t *testing.T) {
	recs := []Record{
		day(t, "2019-12-31", 1, 1, 1, 1),
		day(t, "2020-01-02", 2, 2, 2, 2),
		day(t, "2023-01-03", 3, 3, 3, 3),
		day(t, "2021-07-01", 4, 4, 4, 4),
		day(t, "2022-12-30", 5, 5, 5, 5),
	}

	got := FilterYears(recs, YearRange{Start: 2020, End: 2022})
	require.Len(t, got, 3)

	var opens []float64
	for _, r := range got {
		assert.True(t, r.Year >= 2020 && r.Year <= 2022)
		opens = append(opens, r.Open)
	}
	assert.Equal(t, []float64{2, 4, 5}, opens)

	assert.Empty(t, FilterYears(recs, YearRange{Start: 1990, End: 1999}))
	assert.Len(t, FilterYears(recs, YearRange{Start: 2019, End: 2019}), 1)
}

func TestFilterDate(t *testing.T) {
	recs := []Record{
		day(t, "2022-03-16", 1, 1, 1, 1),
		day(t, "2022-03-17", 10, 12, 9, 11),
		day(t, "2021-03-17", 3, 3, 3, 3),
	}

	got := FilterDate(recs, Date{Year: 2022, Month: time.March, Day: 17})
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].Open)

	none := FilterDate(recs, Date{Year: 2022, Month: time.March, Day: 18})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2022-03-17")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2022, Month: time.March, Day: 17}, d)
	assert.Equal(t, "2022-03-17", d.String())

	_, err = ParseDate("2022-13-01")
	assert.Error(t, err)
}

func TestMeltSnapshot(t *testing.T) {
	recs, err := Normalize([]PriceRecord{{Date: "2022-03-17", Open: 10, High: 12, Low: 9, Close: 11, Volume: 100}})
	require.NoError(t, err)

	got := FilterDate(recs, Date{Year: 2022, Month: time.March, Day: 17})
	require.Len(t, got, 1)

	want := []Indicator{
		{Name: "open", Value: 10},
		{Name: "high", Value: 12},
		{Name: "low", Value: 9},
		{Name: "close", Value: 11},
	}
	assert.Equal(t, want, Melt(got[0].PriceRecord))
}

func TestMeltAppendsExtraColumns(t *testing.T) {
	r := PriceRecord{
		Open: 10, High: 12, Low: 9, Close: 11,
		Extra: []Indicator{{Name: "Adj Close", Value: 10.8}},
	}
	want := []Indicator{
		{Name: "open", Value: 10},
		{Name: "high", Value: 12},
		{Name: "low", Value: 9},
		{Name: "close", Value: 11},
		{Name: "Adj Close", Value: 10.8},
	}
	assert.Equal(t, want, Melt(r))
}

func TestResampleMonthlyHighIgnoresOrder(t *testing.T) {
	d1 := day(t, "2020-01-01", 9, 10, 8, 9.5)
	d2 := day(t, "2020-01-02", 9.5, 15, 9, 14)
	d3 := day(t, "2020-01-03", 14, 12, 7, 11)

	orders := [][]Record{
		{d1, d2, d3},
		{d3, d1, d2},
		{d2, d3, d1},
	}
	for _, recs := range orders {
		ms := ResampleMonthly(recs)
		require.Len(t, ms, 1)
		assert.Equal(t, 15.0, ms[0].High)
		assert.Equal(t, 7.0, ms[0].Low)
		assert.Equal(t, 9.0, ms[0].Open)
		assert.Equal(t, 11.0, ms[0].Close)
		assert.Equal(t, 3, ms[0].Days)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ms[0].Month)
	}
}

func TestResampleMonthlyGroups(t *testing.T) {
	recs := []Record{
		day(t, "2020-01-02", 1, 5, 1, 2),
		day(t, "2020-01-31", 2, 6, 2, 3),
		day(t, "2020-03-02", 3, 7, 0.5, 4),
		day(t, "2020-03-03", 4, 4, 3, 5),
	}

	ms := ResampleMonthly(recs)
	require.Len(t, ms, 2, "february has no records and must not appear")

	assert.Equal(t, time.January, ms[0].Month.Month())
	assert.Equal(t, time.March, ms[1].Month.Month())
	for _, m := range ms {
		assert.GreaterOrEqual(t, m.High, m.Low)
	}
	assert.Equal(t, MonthlySummary{Month: ms[1].Month, Open: 3, High: 7, Low: 0.5, Close: 5, Days: 2}, ms[1])
}

func TestResampleMonthlyTiesKeepInputOrder(t *testing.T) {
	a := day(t, "2020-05-01", 1, 2, 1, 1.5)
	b := day(t, "2020-05-01", 3, 4, 3, 3.5)

	ms := ResampleMonthly([]Record{a, b})
	require.Len(t, ms, 1)
	assert.Equal(t, 1.0, ms[0].Open)
	assert.Equal(t, 3.5, ms[0].Close)
}

func TestResampleMonthlyIdempotent(t *testing.T) {
	recs := []Record{
		day(t, "2008-01-31", 10, 12, 9, 11),
		day(t, "2008-02-29", 11, 13, 10, 12),
		day(t, "2008-03-31", 12, 12.5, 8, 8.5),
	}

	ms := ResampleMonthly(recs)
	require.Len(t, ms, len(recs))
	for i, r := range recs {
		assert.Equal(t, r.Open, ms[i].Open)
		assert.Equal(t, r.High, ms[i].High)
		assert.Equal(t, r.Low, ms[i].Low)
		assert.Equal(t, r.Close, ms[i].Close)
	}
}

func TestResampleMonthlyEmpty(t *testing.T) {
	ms := ResampleMonthly(nil)
	assert.NotNil(t, ms)
	assert.Empty(t, ms)
}

func TestResampleDoesNotMutateInput(t *testing.T) {
	recs := []Record{
		day(t, "2020-02-03", 2, 2, 2, 2),
		day(t, "2020-01-02", 1, 1, 1, 1),
	}
	ResampleMonthly(recs)
	assert.Equal(t, "2020-02-03", recs[0].Date)
}
