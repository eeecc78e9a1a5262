// Package chart builds renderer independent chart descriptions from
// monthly summaries and melted indicators.
package chart

// Kind identifies the shape of a Figure.
type Kind string

const (
	KindIndicatorBar Kind = "indicator_bar"
	KindCandlestick  Kind = "candlestick"
	KindTrend        Kind = "candlestick_trend"
)

// TraceType identifies how a trace is drawn.
type TraceType string

const (
	TraceBar         TraceType = "bar"
	TraceCandlestick TraceType = "candlestick"
	TraceLine        TraceType = "line"
)

// Figure is a self-contained chart description.
type Figure struct {
	Kind   Kind
	Title  string
	Layout Layout
	Traces []Trace
}

// Layout describes axes and interactive controls.
type Layout struct {
	XAxisTitle string
	YAxisTitle string
	XAxisType  string // "category" or "date"

	// Rows is the number of stacked panels sharing the x axis.
	Rows            int
	SharedX         bool
	VerticalSpacing float64

	RangeSelector []RangeButton
	RangeSlider   bool
}

// RangeButton is one preset of the range selector. A zero Count with
// StepAll shows everything.
type RangeButton struct {
	Label string
	Count int
	Step  Step
}

// Step is the unit of a RangeButton.
type Step string

const (
	StepMonth Step = "month"
	StepYear  Step = "year"
	StepAll   Step = "all"
)

// Months returns how many months the button spans, or 0 for StepAll.
func (b RangeButton) Months() int {
	switch b.Step {
	case StepMonth:
		return b.Count
	case StepYear:
		return b.Count * 12
	}
	return 0
}

// Trace is one data series. Which value fields are populated depends on
// Type; colors live in Style only.
type Trace struct {
	Type TraceType
	Name string
	Row  int

	X     []string
	Y     []float64
	Text  []string
	Open  []float64
	High  []float64
	Low   []float64
	Close []float64

	Style Style
}

// Style carries every color of a trace.
type Style struct {
	Colors     []string
	Increasing string
	Decreasing string
	Line       string
}

// Empty reports whether the figure has no data points.
func (f Figure) Empty() bool {
	for _, t := range f.Traces {
		if len(t.X) > 0 {
			return false
		}
	}
	return true
}
