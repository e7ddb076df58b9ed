// Package metrics persists render/reflow timing samples to a SQLite
// database for offline analysis, grounded on the teacher's cmd/dbu tool
// which drives a SQLite database through database/sql and
// github.com/mattn/go-sqlite3.
package metrics

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Recorder writes timing samples for compositor phases ("reflow",
// "render", "update_widget") to a SQLite-backed table.
type Recorder struct {
	db *sql.DB
}

// Open creates or opens the sqlite database at path and ensures the
// samples table exists.
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		phase TEXT NOT NULL,
		duration_us INTEGER NOT NULL,
		rows INTEGER NOT NULL,
		recorded_at DATETIME NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Recorder{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Record stores one timing sample. rows is the number of screen rows the
// phase touched (e.g. len(compositor.Render(nil))), for correlating
// duration against arrangement size.
func (r *Recorder) Record(phase string, duration time.Duration, rows int) error {
	_, err := r.db.Exec(
		`INSERT INTO samples (phase, duration_us, rows, recorded_at) VALUES (?, ?, ?, ?)`,
		phase, duration.Microseconds(), rows, time.Now(),
	)
	return err
}

// Summary is the aggregate timing for one phase across all recorded
// samples.
type Summary struct {
	Phase     string
	Count     int
	AvgMicros float64
	MaxMicros int64
}

// Summarize aggregates recorded samples grouped by phase, most-frequent
// phase first.
func (r *Recorder) Summarize() ([]Summary, error) {
	rows, err := r.db.Query(`
		SELECT phase, COUNT(*), AVG(duration_us), MAX(duration_us)
		FROM samples
		GROUP BY phase
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Phase, &s.Count, &s.AvgMicros, &s.MaxMicros); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
