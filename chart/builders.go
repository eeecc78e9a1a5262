package chart

import (
	"strconv"

	"github.com/rustyeddy/stockcharts/market"
)

const monthLayout = "2006-01-02"

// DefaultRangeButtons are the presets of the trend chart range selector.
var DefaultRangeButtons = []RangeButton{
	{Label: "1 mo", Count: 1, Step: StepMonth},
	{Label: "3 mo", Count: 3, Step: StepMonth},
	{Label: "6 mo", Count: 6, Step: StepMonth},
	{Label: "1 yr", Count: 1, Step: StepYear},
	{Label: "all", Step: StepAll},
}

// BarOptions configures IndicatorBar. Empty fields take defaults.
type BarOptions struct {
	Title      string
	XAxisTitle string
	YAxisTitle string
	Colors     []string
}

// CandleOptions configures the candlestick builders.
type CandleOptions struct {
	Title   string
	Palette Palette
}

// IndicatorBar draws one bar per indicator, labelled with its value.
func IndicatorBar(o BarOptions, inds []market.Indicator) Figure {
	if o.XAxisTitle == "" {
		o.XAxisTitle = "Stock Price Indicators"
	}
	if o.YAxisTitle == "" {
		o.YAxisTitle = "Dollars"
	}
	if len(o.Colors) == 0 {
		o.Colors = BarColors
	}

	tr := Trace{
		Type:  TraceBar,
		Name:  "Dollars",
		Row:   1,
		X:     make([]string, 0, len(inds)),
		Y:     make([]float64, 0, len(inds)),
		Text:  make([]string, 0, len(inds)),
		Style: Style{Colors: make([]string, 0, len(inds))},
	}
	for i, ind := range inds {
		tr.X = append(tr.X, indicatorLabel(ind.Name))
		tr.Y = append(tr.Y, ind.Value)
		tr.Text = append(tr.Text, strconv.FormatFloat(ind.Value, 'f', -1, 64))
		tr.Style.Colors = append(tr.Style.Colors, o.Colors[i%len(o.Colors)])
	}

	return Figure{
		Kind:  KindIndicatorBar,
		Title: o.Title,
		Layout: Layout{
			XAxisTitle: o.XAxisTitle,
			YAxisTitle: o.YAxisTitle,
			XAxisType:  "category",
			Rows:       1,
		},
		Traces: []Trace{tr},
	}
}

func indicatorLabel(name string) string {
	switch name {
	case "open":
		return "Open"
	case "high":
		return "High"
	case "low":
		return "Low"
	case "close":
		return "Close"
	}
	return name
}

// MonthlyCandlestick draws the summaries as candles in the top panel of
// a two panel layout.
func MonthlyCandlestick(o CandleOptions, ms []market.MonthlySummary) Figure {
	candles := candleTrace("", ms, o.Palette)
	return Figure{
		Kind:  KindCandlestick,
		Title: o.Title,
		Layout: Layout{
			XAxisTitle:      "Date",
			YAxisTitle:      "Dollars",
			XAxisType:       "date",
			Rows:            2,
			SharedX:         true,
			VerticalSpacing: 0.02,
		},
		Traces: []Trace{candles},
	}
}

// CandlestickTrend draws candles with a line of the monthly highs, a
// range selector and a range slider.
func CandlestickTrend(o CandleOptions, ms []market.MonthlySummary) Figure {
	candles := candleTrace("Price", ms, o.Palette)

	line := Trace{
		Type:  TraceLine,
		Name:  "High Price",
		Row:   1,
		X:     append([]string{}, candles.X...),
		Y:     append([]float64{}, candles.High...),
		Style: Style{Line: o.Palette.Line},
	}

	buttons := make([]RangeButton, len(DefaultRangeButtons))
	copy(buttons, DefaultRangeButtons)

	return Figure{
		Kind:  KindTrend,
		Title: o.Title,
		Layout: Layout{
			XAxisTitle:    "Month",
			YAxisTitle:    "High Price",
			XAxisType:     "date",
			Rows:          1,
			RangeSelector: buttons,
			RangeSlider:   true,
		},
		Traces: []Trace{candles, line},
	}
}

func candleTrace(name string, ms []market.MonthlySummary, p Palette) Trace {
	tr := Trace{
		Type:  TraceCandlestick,
		Name:  name,
		Row:   1,
		X:     make([]string, 0, len(ms)),
		Open:  make([]float64, 0, len(ms)),
		High:  make([]float64, 0, len(ms)),
		Low:   make([]float64, 0, len(ms)),
		Close: make([]float64, 0, len(ms)),
		Style: Style{Increasing: p.Increasing, Decreasing: p.Decreasing},
	}
	for _, m := range ms {
		tr.X = append(tr.X, m.Month.Format(monthLayout))
		tr.Open = append(tr.Open, m.Open)
		tr.High = append(tr.High, m.High)
		tr.Low = append(tr.Low, m.Low)
		tr.Close = append(tr.Close, m.Close)
	}
	return tr
}
