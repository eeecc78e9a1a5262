package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r Run) error {
	_, err := j.db.Exec(`
		INSERT INTO runs (run_id, started_at, config)
		VALUES (?, ?, ?)`,
		r.RunID, r.StartedAt.UTC(), r.Config,
	)
	return err
}

func (j *SQLiteJournal) RecordSummary(s SummaryRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO summaries
		(run_id, instrument, period, month, open, high, low, close, days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.RunID, s.Instrument, s.Range, s.Month.UTC(),
		s.Open, s.High, s.Low, s.Close, s.Days,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
