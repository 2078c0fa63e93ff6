package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mzerrouki/campusnews/record"
)

// JSONDirSink archives each record as an individual JSON file named by
// the record's ID, keeping the raw extraction output around for
// inspection or re-export.
type JSONDirSink struct {
	dir string
}

// NewJSONDirSink creates the archive directory if needed (0700:
// owner-only access).
func NewJSONDirSink(dir string) (*JSONDirSink, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &JSONDirSink{dir: dir}, nil
}

// Write stores the record as <id>.json (0600: owner-only read/write).
func (s *JSONDirSink) Write(rec record.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	filename := filepath.Join(s.dir, rec.ID.String()+".json")
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close is a no-op; every record is written eagerly.
func (s *JSONDirSink) Close() error {
	return nil
}

// List reads all archived records back from the directory. Files that
// cannot be read or parsed are skipped rather than failing the whole
// listing.
func (s *JSONDirSink) List() ([]record.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory: %w", err)
	}

	var records []record.Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}

		var rec record.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
