// Package store persists extracted records in SQLite, keyed by article
// link, so repeated crawls of the same site skip articles already
// collected in earlier runs.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mzerrouki/campusnews/record"
)

// ErrDuplicateLink indicates a record with the same link already exists.
var ErrDuplicateLink = errors.New("record with this link already exists")

// RecordStore manages extracted records using SQLite.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore creates a record store with the given database path.
func NewRecordStore(dbPath string) (*RecordStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &RecordStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the records table if it doesn't exist.
func (s *RecordStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		date TEXT,
		description TEXT NOT NULL,
		link TEXT NOT NULL UNIQUE,
		discovered_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *RecordStore) Close() error {
	return s.db.Close()
}

// Add inserts a record. Returns ErrDuplicateLink when a record with the
// same link is already stored.
func (s *RecordStore) Add(rec record.Record) error {
	query := `
		INSERT INTO records (id, title, date, description, link, discovered_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var date *string
	if d := rec.DateString(); d != "" {
		date = &d
	}

	_, err := s.db.Exec(query,
		rec.ID.String(),
		rec.Title,
		date,
		rec.Description,
		rec.Link,
		rec.DiscoveredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return ErrDuplicateLink
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// Write implements the sink contract: duplicates from earlier runs are
// silently skipped instead of failing the crawl.
func (s *RecordStore) Write(rec record.Record) error {
	err := s.Add(rec)
	if errors.Is(err, ErrDuplicateLink) {
		return nil
	}
	return err
}

// HasLink reports whether a record with the given link is stored.
func (s *RecordStore) HasLink(link string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records WHERE link = ?", link).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query records: %w", err)
	}
	return count > 0, nil
}

// List returns all stored records in insertion order.
func (s *RecordStore) List() ([]record.Record, error) {
	rows, err := s.db.Query(`
		SELECT id, title, date, description, link, discovered_at
		FROM records ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (record.Record, error) {
	var (
		rec          record.Record
		id           string
		date         sql.NullString
		discoveredAt string
	)

	if err := rows.Scan(&id, &rec.Title, &date, &rec.Description, &rec.Link, &discoveredAt); err != nil {
		return record.Record{}, fmt.Errorf("failed to scan record: %w", err)
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return record.Record{}, fmt.Errorf("failed to parse record id: %w", err)
	}
	rec.ID = parsedID

	if date.Valid {
		d, err := time.Parse("2006-01-02", date.String)
		if err != nil {
			return record.Record{}, fmt.Errorf("failed to parse record date: %w", err)
		}
		rec.Date = &d
	}

	t, err := time.Parse(time.RFC3339, discoveredAt)
	if err != nil {
		return record.Record{}, fmt.Errorf("failed to parse discovery time: %w", err)
	}
	rec.DiscoveredAt = t

	return rec, nil
}
