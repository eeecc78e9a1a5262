package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	started_at DATETIME NOT NULL,
	config TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS summaries (
	run_id TEXT NOT NULL,
	instrument TEXT NOT NULL,
	period TEXT NOT NULL,
	month DATETIME NOT NULL,
	open REAL NOT NULL,
	high REAL NOT NULL,
	low REAL NOT NULL,
	close REAL NOT NULL,
	days INTEGER NOT NULL,
	PRIMARY KEY (run_id, instrument, period, month)
);

CREATE INDEX IF NOT EXISTS idx_summaries_run ON summaries(run_id);
`
