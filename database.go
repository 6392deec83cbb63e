package main

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite recording database
type DB struct {
	conn *sql.DB
}

// RunRow represents one recorded simulation run
type RunRow struct {
	ID        int64
	PlaneType string
	Seed      int64
	Ticks     uint64
	Outcome   string
	CreatedAt time.Time
}

// OpenDB opens (or creates) the SQLite recording database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// modernc sqlite is happiest with a single writer
	conn.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		plane_type TEXT NOT NULL,
		seed INTEGER NOT NULL,
		ticks INTEGER NOT NULL DEFAULT 0,
		outcome TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS frames (
		run_id INTEGER NOT NULL,
		tick INTEGER NOT NULL,
		data BLOB NOT NULL,
		PRIMARY KEY (run_id, tick)
	);`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

// InsertRun creates a run record and returns its id
func (db *DB) InsertRun(planeType string, seed int64) (int64, error) {
	res, err := db.conn.Exec(
		`INSERT INTO runs (plane_type, seed) VALUES (?, ?)`, planeType, seed)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FinishRun stores the final tick count and outcome of a run
func (db *DB) FinishRun(id int64, ticks uint64, outcome string) error {
	_, err := db.conn.Exec(
		`UPDATE runs SET ticks = ?, outcome = ? WHERE id = ?`, ticks, outcome, id)
	return err
}

// GetRun loads one run record
func (db *DB) GetRun(id int64) (RunRow, error) {
	var row RunRow
	err := db.conn.QueryRow(
		`SELECT id, plane_type, seed, ticks, outcome, created_at FROM runs WHERE id = ?`, id,
	).Scan(&row.ID, &row.PlaneType, &row.Seed, &row.Ticks, &row.Outcome, &row.CreatedAt)
	return row, err
}

// InsertFrames writes a batch of telemetry frames in one transaction
func (db *DB) InsertFrames(runID int64, frames []Frame) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO frames (run_id, tick, data) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, f := range frames {
		data, err := EncodeFrame(f)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := stmt.Exec(runID, f.Tick, data); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// FrameCount returns the number of recorded frames for a run
func (db *DB) FrameCount(runID int64) (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM frames WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

// LoadFrames reads back all frames of a run in tick order
func (db *DB) LoadFrames(runID int64) ([]Frame, error) {
	rows, err := db.conn.Query(
		`SELECT data FROM frames WHERE run_id = ? ORDER BY tick`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		f, err := DecodeFrame(data)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}
