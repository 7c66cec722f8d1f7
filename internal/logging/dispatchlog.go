// Package logging persists the dispatch decision trail alongside the
// ledger in the same SQLite database.
package logging

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS dispatch_log (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id       TEXT,
	raw_intent       TEXT NOT NULL,
	corrected_intent TEXT NOT NULL,
	confidence       REAL NOT NULL,
	source           TEXT NOT NULL,
	reply            TEXT,
	created_at       TEXT NOT NULL
);
`

// EnsureSchema creates the dispatch_log table if needed.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate dispatch log: %w", err)
	}
	return nil
}

// #endregion schema

// #region log-decision

// LogDecision appends one entry to the dispatch log.
func LogDecision(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO dispatch_log (request_id, raw_intent, corrected_intent, confidence, source, reply, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.RequestID),
		entry.RawIntent,
		entry.CorrectedIntent,
		entry.Confidence,
		entry.Source,
		nullIfEmpty(entry.Reply),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region recent

// Recent returns the newest entries, most recent first.
func Recent(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT request_id, raw_intent, corrected_intent, confidence, source, reply, created_at
		 FROM dispatch_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var requestID, reply sql.NullString
		var createdStr string
		if err := rows.Scan(&requestID, &e.RawIntent, &e.CorrectedIntent, &e.Confidence, &e.Source, &reply, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if requestID.Valid {
			e.RequestID = requestID.String
		}
		if reply.Valid {
			e.Reply = reply.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
