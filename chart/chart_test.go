package chart

import (
	"testing"
	"time"

	"github.com/rustyeddy/stockcharts/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaries() []market.MonthlySummary {
	return []market.MonthlySummary{
		{Month: time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC), Open: 10, High: 12, Low: 9, Close: 11, Days: 21},
		{Month: time.Date(2008, 2, 1, 0, 0, 0, 0, time.UTC), Open: 11, High: 11.5, Low: 8, Close: 8.5, Days: 20},
		{Month: time.Date(2008, 4, 1, 0, 0, 0, 0, time.UTC), Open: 8.5, High: 13, Low: 8.2, Close: 12.9, Days: 22},
	}
}

func TestIndicatorBar(t *testing.T) {
	inds := market.Melt(market.PriceRecord{Date: "2022-03-17", Open: 10, High: 12, Low: 9, Close: 11.25, Volume: 100})

	fig := IndicatorBar(BarOptions{Title: "March 17th, 2022: Apple Stock Price Statistics"}, inds)
	assert.Equal(t, KindIndicatorBar, fig.Kind)
	assert.Equal(t, "Stock Price Indicators", fig.Layout.XAxisTitle)
	assert.Equal(t, "Dollars", fig.Layout.YAxisTitle)

	require.Len(t, fig.Traces, 1)
	tr := fig.Traces[0]
	assert.Equal(t, TraceBar, tr.Type)
	assert.Equal(t, []string{"Open", "High", "Low", "Close"}, tr.X)
	assert.Equal(t, []float64{10, 12, 9, 11.25}, tr.Y)
	assert.Equal(t, []string{"10", "12", "9", "11.25"}, tr.Text)
	assert.Equal(t, BarColors[:4], tr.Style.Colors)
}

func TestIndicatorBarWithAdjClose(t *testing.T) {
	inds := market.Melt(market.PriceRecord{
		Open: 10, High: 12, Low: 9, Close: 11,
		Extra: []market.Indicator{{Name: "Adj Close", Value: 10.8}},
	})

	fig := IndicatorBar(BarOptions{}, inds)
	require.Len(t, fig.Traces, 1)
	tr := fig.Traces[0]
	assert.Equal(t, []string{"Open", "High", "Low", "Close", "Adj Close"}, tr.X)
	assert.Equal(t, []float64{10, 12, 9, 11, 10.8}, tr.Y)
	assert.Equal(t, BarColors, tr.Style.Colors)
}

func TestIndicatorBarCyclesColors(t *testing.T) {
	inds := market.Melt(market.PriceRecord{Open: 1, High: 2, Low: 3, Close: 4})
	fig := IndicatorBar(BarOptions{Colors: []string{"#000", "#fff"}}, inds)
	assert.Equal(t, []string{"#000", "#fff", "#000", "#fff"}, fig.Traces[0].Style.Colors)
}

func TestIndicatorBarEmpty(t *testing.T) {
	fig := IndicatorBar(BarOptions{Title: "nothing"}, nil)
	require.Len(t, fig.Traces, 1)
	assert.True(t, fig.Empty())
}

func TestMonthlyCandlestick(t *testing.T) {
	fig := MonthlyCandlestick(CandleOptions{Title: "Apple Monthly Candlestick Chart (2020-2022)", Palette: CandlePalette}, summaries())

	assert.Equal(t, KindCandlestick, fig.Kind)
	assert.Equal(t, 2, fig.Layout.Rows)
	assert.True(t, fig.Layout.SharedX)
	assert.Equal(t, 0.02, fig.Layout.VerticalSpacing)
	assert.False(t, fig.Layout.RangeSlider)

	require.Len(t, fig.Traces, 1)
	tr := fig.Traces[0]
	assert.Equal(t, TraceCandlestick, tr.Type)
	assert.Equal(t, 1, tr.Row)
	assert.Equal(t, []string{"2008-01-01", "2008-02-01", "2008-04-01"}, tr.X)
	assert.Equal(t, []float64{10, 11, 8.5}, tr.Open)
	assert.Equal(t, []float64{12, 11.5, 13}, tr.High)
	assert.Equal(t, []float64{9, 8, 8.2}, tr.Low)
	assert.Equal(t, []float64{11, 8.5, 12.9}, tr.Close)
	assert.Equal(t, "#35C730", tr.Style.Increasing)
	assert.Equal(t, "#C73535", tr.Style.Decreasing)
}

func TestCandlestickTrend(t *testing.T) {
	ms := summaries()
	fig := CandlestickTrend(CandleOptions{Title: "Apple Stock Price Movement 2007 - 2009 (Monthly)", Palette: DefaultPalette}, ms)

	assert.Equal(t, KindTrend, fig.Kind)
	assert.True(t, fig.Layout.RangeSlider)
	assert.Equal(t, "date", fig.Layout.XAxisType)
	assert.Equal(t, "Month", fig.Layout.XAxisTitle)
	assert.Equal(t, "High Price", fig.Layout.YAxisTitle)

	var labels []string
	var months []int
	for _, b := range fig.Layout.RangeSelector {
		labels = append(labels, b.Label)
		months = append(months, b.Months())
	}
	assert.Equal(t, []string{"1 mo", "3 mo", "6 mo", "1 yr", "all"}, labels)
	assert.Equal(t, []int{1, 3, 6, 12, 0}, months)

	require.Len(t, fig.Traces, 2)
	assert.Equal(t, "Price", fig.Traces[0].Name)
	line := fig.Traces[1]
	assert.Equal(t, TraceLine, line.Type)
	assert.Equal(t, "High Price", line.Name)
	assert.Equal(t, []float64{12, 11.5, 13}, line.Y)
	assert.Equal(t, "#9AC4F8", line.Style.Line)

	// builders must not alias caller data
	fig.Traces[1].Y[0] = -1
	assert.Equal(t, 12.0, ms[0].High)
	assert.Equal(t, 12.0, fig.Traces[0].High[0])
}

func TestPalettesDifferOnlyInColors(t *testing.T) {
	ms := summaries()
	def := CandlestickTrend(CandleOptions{Title: "x", Palette: DefaultPalette}, ms)
	cb := CandlestickTrend(CandleOptions{Title: "x", Palette: ColorblindPalette}, ms)

	assert.NotEqual(t, def, cb)
	assert.Equal(t, "#009E73", cb.Traces[0].Style.Increasing)
	assert.Equal(t, "#D55E00", cb.Traces[0].Style.Decreasing)
	assert.Equal(t, "#56B4E9", cb.Traces[1].Style.Line)

	assert.Equal(t, stripColors(def), stripColors(cb))
}

func stripColors(f Figure) Figure {
	traces := make([]Trace, len(f.Traces))
	copy(traces, f.Traces)
	for i := range traces {
		traces[i].Style = Style{}
	}
	f.Traces = traces
	return f
}

func TestPaletteByName(t *testing.T) {
	p, err := PaletteByName("colorblind")
	require.NoError(t, err)
	assert.Equal(t, ColorblindPalette, p)

	_, err = PaletteByName("neon")
	assert.Error(t, err)

	assert.Equal(t, []string{"candles", "colorblind", "default"}, PaletteNames())
}

func TestBuildersTolerateEmptyInput(t *testing.T) {
	assert.True(t, MonthlyCandlestick(CandleOptions{}, nil).Empty())
	assert.True(t, CandlestickTrend(CandleOptions{}, []market.MonthlySummary{}).Empty())
}
