// Package render turns chart figures into go-echarts HTML pages.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rustyeddy/stockcharts/chart"
)

const (
	width  = "1100px"
	height = "560px"
)

// Page assembles every figure into a single page. Chart ids are derived
// from the figure position so the same input renders the same page.
func Page(title string, figs ...chart.Figure) *components.Page {
	page := components.NewPage()
	page.PageTitle = title
	for i, f := range figs {
		page.AddCharts(Chart(fmt.Sprintf("chart_%d", i), f))
	}
	return page
}

// Chart converts one figure. The id must be a valid JavaScript
// identifier.
func Chart(id string, f chart.Figure) components.Charter {
	switch f.Kind {
	case chart.KindIndicatorBar:
		return barChart(id, f)
	default:
		return klineChart(id, f)
	}
}

// WritePage renders the page for figs to w.
func WritePage(w io.Writer, title string, figs ...chart.Figure) error {
	return Page(title, figs...).Render(w)
}

// WriteFiles writes index.html holding every figure plus one file per
// figure into dir and returns the paths written.
func WriteFiles(dir, title string, figs []chart.Figure) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	index := filepath.Join(dir, "index.html")
	if err := writeFile(index, func(w io.Writer) error { return WritePage(w, title, figs...) }); err != nil {
		return nil, err
	}
	paths = append(paths, index)

	for i, f := range figs {
		p := filepath.Join(dir, FileName(i, f))
		err := writeFile(p, func(w io.Writer) error { return WritePage(w, f.Title, f) })
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// FileName is the per-figure file name used by WriteFiles.
func FileName(i int, f chart.Figure) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(f.Title), "-"), "-")
	if slug == "" {
		slug = string(f.Kind)
	}
	return fmt.Sprintf("%02d-%s.html", i, slug)
}

func globalOpts(id string, f chart.Figure) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: f.Title,
			ChartID:   id,
			Width:     width,
			Height:    height,
		}),
		charts.WithTitleOpts(opts.Title{Title: f.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: len(f.Traces) > 1}),
		charts.WithXAxisOpts(opts.XAxis{Name: f.Layout.XAxisTitle, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.Layout.YAxisTitle, Scale: true}),
	}
}

func barChart(id string, f chart.Figure) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(id, f)...)

	for _, tr := range f.Traces {
		data := make([]opts.BarData, 0, len(tr.Y))
		for i, v := range tr.Y {
			d := opts.BarData{Name: tr.X[i], Value: v}
			if len(tr.Style.Colors) > 0 {
				d.ItemStyle = &opts.ItemStyle{Color: tr.Style.Colors[i%len(tr.Style.Colors)]}
			}
			data = append(data, d)
		}
		bar.SetXAxis(tr.X).AddSeries(tr.Name, data,
			charts.WithLabelOpts(opts.Label{Show: true, Position: "inside"}),
		)
	}
	return bar
}

func klineChart(id string, f chart.Figure) *charts.Kline {
	kline := charts.NewKLine()
	gopts := globalOpts(id, f)
	if f.Layout.RangeSlider {
		gopts = append(gopts, charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: 100, XAxisIndex: []int{0}},
			opts.DataZoom{Type: "inside", Start: 0, End: 100, XAxisIndex: []int{0}},
		))
	}
	kline.SetGlobalOptions(gopts...)

	var points int
	for _, tr := range f.Traces {
		switch tr.Type {
		case chart.TraceCandlestick:
			data := make([]opts.KlineData, 0, len(tr.X))
			for i := range tr.X {
				// echarts orders candle values open, close, low, high
				data = append(data, opts.KlineData{Value: [4]float64{tr.Open[i], tr.Close[i], tr.Low[i], tr.High[i]}})
			}
			kline.SetXAxis(tr.X).AddSeries(tr.Name, data,
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color:        tr.Style.Increasing,
					Color0:       tr.Style.Decreasing,
					BorderColor:  tr.Style.Increasing,
					BorderColor0: tr.Style.Decreasing,
				}),
			)
			points = len(tr.X)
		case chart.TraceLine:
			kline.Overlap(lineChart(tr))
		}
	}

	if len(f.Layout.RangeSelector) > 0 {
		kline.AddJSFuncs(rangeSelectorJS(id, points, f.Layout.RangeSelector))
	}
	return kline
}

func lineChart(tr chart.Trace) *charts.Line {
	line := charts.NewLine()
	data := make([]opts.LineData, 0, len(tr.Y))
	for _, v := range tr.Y {
		data = append(data, opts.LineData{Value: v})
	}
	line.SetXAxis(tr.X).AddSeries(tr.Name, data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: tr.Style.Line, Width: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: tr.Style.Line}),
	)
	return line
}

// rangeSelectorJS adds preset buttons above the chart that move the
// dataZoom window to the last N months of a monthly series.
func rangeSelectorJS(id string, points int, buttons []chart.RangeButton) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(function(){var c=goecharts_%s;var el=document.getElementById('%s');", id, id)
	b.WriteString("var bar=document.createElement('div');bar.className='range-selector';")
	for _, btn := range buttons {
		start := 0
		if m := btn.Months(); m > 0 && m < points {
			start = points - m
		}
		end := points - 1
		if end < 0 {
			end = 0
		}
		fmt.Fprintf(&b,
			"(function(){var x=document.createElement('button');x.textContent=%q;"+
				"x.onclick=function(){c.dispatchAction({type:'dataZoom',startValue:%d,endValue:%d});};bar.appendChild(x);})();",
			btn.Label, start, end)
	}
	b.WriteString("el.parentNode.insertBefore(bar,el);})();")
	return b.String()
}
