package journal

import (
	"time"

	"github.com/rustyeddy/stockcharts/id"
)

// SummaryRecord is one exported monthly summary.
type SummaryRecord struct {
	RunID      id.RunID
	Instrument string
	Range      string
	Month      time.Time
	Open       float64
	High       float64
	Low        float64
	Close      float64
	Days       int
}

// Run describes one pipeline run.
type Run struct {
	RunID     id.RunID
	StartedAt time.Time
	Config    string
}

type Journal interface {
	RecordRun(Run) error
	RecordSummary(SummaryRecord) error
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordRun(Run) error { return nil }
func (Nop) RecordSummary(SummaryRecord) error { return nil }
func (Nop) Close() error { return nil }
