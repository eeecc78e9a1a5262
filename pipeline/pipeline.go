// Package pipeline runs load, normalize, filter, resample and chart
// construction for every configured instrument.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rustyeddy/stockcharts/chart"
	"github.com/rustyeddy/stockcharts/config"
	"github.com/rustyeddy/stockcharts/id"
	"github.com/rustyeddy/stockcharts/journal"
	"github.com/rustyeddy/stockcharts/market"
	"github.com/rustyeddy/stockcharts/market/data"
)

// Summary holds the monthly summaries of one instrument.
type Summary struct {
	Symbol     string
	Name       string
	Recent     []market.MonthlySummary
	Historical []market.MonthlySummary
}

// Report is the outcome of one run. Displayed figures are shown by
// default; Hidden ones are built but left to the caller.
type Report struct {
	Ranges    config.RangesConfig
	Summaries []Summary
	Snapshot  []market.Indicator
	Displayed []chart.Figure
	Hidden    []chart.Figure
}

// Figures returns the displayed figures, followed by the hidden ones when
// all is set.
func (r *Report) Figures(all bool) []chart.Figure {
	figs := append([]chart.Figure{}, r.Displayed...)
	if all {
		figs = append(figs, r.Hidden...)
	}
	return figs
}

// Summary finds the summaries of symbol.
func (r *Report) Summary(symbol string) (Summary, bool) {
	for _, s := range r.Summaries {
		if strings.EqualFold(s.Symbol, symbol) {
			return s, true
		}
	}
	return Summary{}, false
}

// Records flattens the summaries into journal records tagged with runID.
// Recent months of an instrument come before its historical months.
func (r *Report) Records(runID id.RunID) []journal.SummaryRecord {
	var out []journal.SummaryRecord
	for _, s := range r.Summaries {
		sets := []struct {
			span string
			ms   []market.MonthlySummary
		}{
			{r.Ranges.Recent.String(), s.Recent},
			{r.Ranges.Historical.String(), s.Historical},
		}
		for _, set := range sets {
			for _, m := range set.ms {
				out = append(out, journal.SummaryRecord{
					RunID:      runID,
					Instrument: s.Symbol,
					Range:      set.span,
					Month:      m.Month,
					Open:       m.Open,
					High:       m.High,
					Low:        m.Low,
					Close:      m.Close,
					Days:       m.Days,
				})
			}
		}
	}
	return out
}

// Journal records every monthly summary of the run under runID.
func (r *Report) Journal(j journal.Journal, runID id.RunID) error {
	for _, rec := range r.Records(runID) {
		if err := j.RecordSummary(rec); err != nil {
			return fmt.Errorf("record %s %s: %w", rec.Instrument, rec.Month.Format("2006-01"), err)
		}
	}
	return nil
}

// LoadSeries loads and normalizes one instrument.
func LoadSeries(cfg *config.Config, in config.InstrumentConfig) (market.Series, error) {
	path := cfg.InstrumentPath(in)
	prices, err := data.Load(path)
	if err != nil {
		return market.Series{}, err
	}
	recs, err := market.Normalize(prices, cfg.DateLayouts()...)
	if err != nil {
		return market.Series{}, fmt.Errorf("normalize %s: %w", path, err)
	}
	return market.Series{Symbol: in.Symbol, Name: displayName(in), Records: recs}, nil
}

// Run executes the whole pipeline. A nil logger discards output.
func Run(cfg *config.Config, logger *log.Logger) (*Report, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	candlePalette, err := chart.PaletteByName(cfg.Charts.CandlePalette)
	if err != nil {
		return nil, err
	}

	rep := &Report{Ranges: cfg.Ranges}
	var trendFigs []chart.Figure

	for _, in := range cfg.Instruments {
		series, err := LoadSeries(cfg, in)
		if err != nil {
			return nil, err
		}
		logger.Printf("[INFO] loaded %s: %d records", in.Symbol, len(series.Records))

		recent := market.FilterYears(series.Records, cfg.Ranges.Recent)
		sum := Summary{
			Symbol:     series.Symbol,
			Name:       series.Name,
			Recent:     market.ResampleMonthly(recent),
			Historical: market.ResampleMonthly(market.FilterYears(series.Records, cfg.Ranges.Historical)),
		}
		rep.Summaries = append(rep.Summaries, sum)
		logger.Printf("[INFO] %s: %d months in %s, %d months in %s",
			in.Symbol, len(sum.Recent), cfg.Ranges.Recent, len(sum.Historical), cfg.Ranges.Historical)

		if strings.EqualFold(in.Symbol, cfg.Snapshot.Instrument) {
			fig, inds, err := snapshot(cfg, series.Name, recent)
			if err != nil {
				return nil, err
			}
			if len(inds) == 0 {
				logger.Printf("[WARN] no %s record on %s", in.Symbol, cfg.Snapshot.Date)
			}
			rep.Snapshot = inds
			rep.Displayed = append(rep.Displayed, fig)
		}

		rep.Displayed = append(rep.Displayed, chart.MonthlyCandlestick(chart.CandleOptions{
			Title:   fmt.Sprintf("%s Monthly Candlestick Chart (%s)", series.Name, cfg.Ranges.Recent),
			Palette: candlePalette,
		}, sum.Recent))

		for _, name := range cfg.Charts.TrendPalettes {
			p, err := chart.PaletteByName(name)
			if err != nil {
				return nil, err
			}
			trendFigs = append(trendFigs, chart.CandlestickTrend(chart.CandleOptions{
				Title: fmt.Sprintf("%s Stock Price Movement %d - %d (Monthly)",
					series.Name, cfg.Ranges.Historical.Start, cfg.Ranges.Historical.End),
				Palette: p,
			}, sum.Historical))
		}
	}

	if cfg.Charts.ShowTrend {
		rep.Displayed = append(rep.Displayed, trendFigs...)
	} else {
		rep.Hidden = trendFigs
	}
	return rep, nil
}

// snapshot builds the indicator bar chart for the configured day. A day
// without a record yields an empty chart.
func snapshot(cfg *config.Config, name string, recs []market.Record) (chart.Figure, []market.Indicator, error) {
	d, err := market.ParseDate(cfg.Snapshot.Date)
	if err != nil {
		return chart.Figure{}, nil, fmt.Errorf("snapshot: %w", err)
	}

	inds := Snapshot(recs, d)
	fig := chart.IndicatorBar(chart.BarOptions{
		Title:  fmt.Sprintf("%s: %s Stock Price Statistics", longDate(d), name),
		Colors: cfg.Charts.BarColors,
	}, inds)
	return fig, inds, nil
}

// Snapshot melts the records of day d. The result is empty, not nil,
// when no record matches.
func Snapshot(recs []market.Record, d market.Date) []market.Indicator {
	inds := []market.Indicator{}
	for _, r := range market.FilterDate(recs, d) {
		inds = append(inds, market.Melt(r.PriceRecord)...)
	}
	return inds
}

func displayName(in config.InstrumentConfig) string {
	if in.Name != "" {
		return in.Name
	}
	return in.Symbol
}

// longDate formats d like "March 17th, 2022".
func longDate(d market.Date) string {
	suffix := "th"
	switch {
	case d.Day%100 >= 11 && d.Day%100 <= 13:
	case d.Day%10 == 1:
		suffix = "st"
	case d.Day%10 == 2:
		suffix = "nd"
	case d.Day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%s %d%s, %d", d.Month, d.Day, suffix, d.Year)
}
