package journal

import (
	"database/sql"
	"fmt"

	"github.com/rustyeddy/stockcharts/id"
)

// GetRun returns a single run by id.
func (j *SQLiteJournal) GetRun(runID id.RunID) (Run, error) {
	var r Run
	err := j.db.QueryRow(`
		SELECT run_id, started_at, config
		FROM runs
		WHERE run_id = ?`, runID).Scan(&r.RunID, &r.StartedAt, &r.Config)
	if err != nil {
		if err == sql.ErrNoRows {
			return Run{}, fmt.Errorf("run %q not found", runID)
		}
		return Run{}, err
	}
	return r, nil
}

// ListRuns returns every recorded run, newest first.
func (j *SQLiteJournal) ListRuns() ([]Run, error) {
	rows, err := j.db.Query(`
		SELECT run_id, started_at, config
		FROM runs
		ORDER BY run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.Config); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSummaries returns the summaries of a run ordered by instrument,
// range and month.
func (j *SQLiteJournal) ListSummaries(runID id.RunID) ([]SummaryRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, instrument, period, month, open, high, low, close, days
		FROM summaries
		WHERE run_id = ?
		ORDER BY instrument ASC, period ASC, month ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SummaryRecord
	for rows.Next() {
		var s SummaryRecord
		if err := rows.Scan(
			&s.RunID,
			&s.Instrument,
			&s.Range,
			&s.Month,
			&s.Open,
			&s.High,
			&s.Low,
			&s.Close,
			&s.Days,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
