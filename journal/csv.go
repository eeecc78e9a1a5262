package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

const monthLayout = "2006-01-02"

// CSVHeader is the first row of a CSV journal.
var CSVHeader = []string{"run_id", "instrument", "range", "month", "open", "high", "low", "close", "days"}

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

// RecordRun is a no-op; every row already carries its run id.
func (j *CSVJournal) RecordRun(Run) error {
	return nil
}

func (j *CSVJournal) RecordSummary(s SummaryRecord) error {
	err := j.w.Write([]string{
		string(s.RunID),
		s.Instrument,
		s.Range,
		s.Month.Format(monthLayout),
		f(s.Open),
		f(s.High),
		f(s.Low),
		f(s.Close),
		strconv.Itoa(s.Days),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
