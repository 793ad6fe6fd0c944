// Package store persists extraction runs to a local SQLite database so
// successive benchmark sweeps can be listed and compared later.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/credlab/credbench/table"
)

// Run describes one stored extraction run.
type Run struct {
	ID        int64
	Scheme    string
	CreatedAt time.Time
	Records   int
}

// Store is a SQLite-backed archive of extraction runs.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and applying the schema
// if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()

		return nil, fmt.Errorf("migrate database %s: %w", path, err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scheme TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS records (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		scheme TEXT NOT NULL,
		operation TEXT NOT NULL,
		n_participants INTEGER NOT NULL,
		threshold INTEGER NOT NULL,
		attributes INTEGER NOT NULL,
		threshold2 INTEGER,
		leakage INTEGER,
		total_attributes INTEGER,
		mean_ms REAL NOT NULL
	);
	`
	_, err := s.db.Exec(schema)

	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun appends one extraction run with its records and returns the
// new run id. The insert is transactional; a failed run leaves no
// partial rows behind.
func (s *Store) SaveRun(
	scheme string,
	at time.Time,
	records []table.Record,
) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (scheme, created_at) VALUES (?, ?)`,
		scheme, at.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records (
			run_id, scheme, operation, n_participants, threshold,
			attributes, threshold2, leakage, total_attributes, mean_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			runID, r.Scheme, r.Operation, r.Participants, r.Threshold,
			r.Attributes, nullable(r.Threshold2), nullable(r.Leakage),
			nullable(r.TotalAttributes), r.MeanMs,
		)
		if err != nil {
			return 0, fmt.Errorf("insert record %s: %w", r.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return runID, nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.scheme, r.created_at, COUNT(rec.run_id)
		FROM runs r
		LEFT JOIN records rec ON rec.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run

	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.Scheme, &r.CreatedAt, &r.Records,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// LoadRun returns the records of one stored run in insertion order.
func (s *Store) LoadRun(runID int64) ([]table.Record, error) {
	rows, err := s.db.Query(`
		SELECT scheme, operation, n_participants, threshold, attributes,
		       threshold2, leakage, total_attributes, mean_ms
		FROM records
		WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []table.Record

	for rows.Next() {
		var (
			rec              table.Record
			t2, leak, totalA sql.NullInt64
		)

		if err := rows.Scan(
			&rec.Scheme, &rec.Operation, &rec.Participants,
			&rec.Threshold, &rec.Attributes,
			&t2, &leak, &totalA, &rec.MeanMs,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		rec.Threshold2 = fromNull(t2)
		rec.Leakage = fromNull(leak)
		rec.TotalAttributes = fromNull(totalA)

		records = append(records, rec)
	}

	return records, rows.Err()
}

func nullable(v *int) any {
	if v == nil {
		return nil
	}

	return int64(*v)
}

func fromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}

	n := int(v.Int64)

	return &n
}
