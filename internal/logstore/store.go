// Package logstore loads JSON log files into an in-memory SQLite
// database and answers free-form SQL queries against it.
package logstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// SourceTimeLayout is the timestamp format used in source log files
	// (two-digit year, e.g. "15/07/08 10:21:52").
	SourceTimeLayout = "06/01/02 15:04:05"

	// StoredTimeLayout is the canonical format timestamps are stored in.
	// Lexicographic order matches chronological order, so ORDER BY works.
	StoredTimeLayout = "2006-01-02 15:04:05"
)

// Entry is one source log record as it appears in the input files.
type Entry struct {
	ApplicationID string `json:"application_id"`
	Message       string `json:"message"`
	Level         string `json:"level"`
	Time          string `json:"time"`
}

// Store wraps an in-memory SQLite database holding loaded log entries.
// Build it once at startup with Open and LoadFiles; it is read-only
// afterwards.
type Store struct {
	db *sql.DB
}

// FileLoad reports how many entries were loaded from one source file.
type FileLoad struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

// LoadResult summarizes a LoadFiles call.
type LoadResult struct {
	Files    []FileLoad `json:"files"`
	Total    int        `json:"total"`
	Warnings []string   `json:"warnings,omitempty"`
}

// Result holds the rows returned by a query. Each row is an ordered
// tuple of column values matching the query's projection.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Open creates a new empty in-memory store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection keeps the in-memory database alive and
	// serializes access; SQLite doesn't support concurrent writes.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection, discarding all loaded entries.
func (s *Store) Close() error {
	return s.db.Close()
}

// createSchema creates the logs table.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			application_id TEXT,
			message TEXT,
			level TEXT,
			time TIMESTAMP
		)
	`
	_, err := db.Exec(schema)
	return err
}

// LoadFiles reads each file in order and inserts its entries into the
// store. Missing files are skipped with a warning. Malformed files and
// entries with unparsable timestamps are also skipped with a warning
// rather than aborting the load, so one bad file never loses the rest.
func (s *Store) LoadFiles(paths []string) (*LoadResult, error) {
	result := &LoadResult{}

	stmt, err := s.db.Prepare(`
		INSERT INTO logs (application_id, message, level, time)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s not found, skipping", path))
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		// Parse elements individually so one bad entry doesn't
		// discard its well-formed neighbors.
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: not a JSON array of log entries, skipping: %v", path, err))
			continue
		}

		loaded := 0
		for i, raw := range raws {
			var entry Entry
			if err := json.Unmarshal(raw, &entry); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: entry %d: invalid entry, skipping: %v", path, i+1, err))
				continue
			}

			t, err := time.Parse(SourceTimeLayout, entry.Time)
			if err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: entry %d: unparsable timestamp %q, skipping", path, i+1, entry.Time))
				continue
			}

			if _, err := stmt.Exec(
				nullableStringValue(entry.ApplicationID),
				entry.Message,
				entry.Level,
				t.Format(StoredTimeLayout),
			); err != nil {
				return nil, fmt.Errorf("%s: entry %d: inserting: %w", path, i+1, err)
			}
			loaded++
		}

		result.Files = append(result.Files, FileLoad{Path: path, Entries: loaded})
		result.Total += loaded
	}

	return result, nil
}

// Query executes a free-form SQL query against the store.
//
// The query text is not inspected or restricted: callers are trusted to
// issue read-only statements. Invalid SQL or references to nonexistent
// columns surface as a *QueryError.
func (s *Store) Query(query string) (*Result, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	return scanRows(rows)
}

// Count returns the total number of loaded entries.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM logs").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// scanRows converts sql.Rows into a positional Result.
func scanRows(rows *sql.Rows) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		// Text columns may scan as []byte depending on the driver;
		// normalize to string so results serialize cleanly.
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	return result, rows.Err()
}

// nullableStringValue converts an empty string to a SQL NULL.
func nullableStringValue(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
