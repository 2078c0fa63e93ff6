package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzerrouki/campusnews/record"
)

// TestJSONDirSink verifies records round-trip through the archive.
func TestJSONDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")

	s, err := NewJSONDirSink(dir)
	require.NoError(t, err)

	rec := record.New("Archived", nil, "Desc", "https://example.edu/a")
	require.NoError(t, s.Write(rec))
	require.NoError(t, s.Close())

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, "Archived", records[0].Title)
	assert.Nil(t, records[0].Date)
}

// TestJSONDirSink_SkipsCorruptFiles verifies unreadable entries are
// skipped instead of failing the listing.
func TestJSONDirSink_SkipsCorruptFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")

	s, err := NewJSONDirSink(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(record.New("Good", nil, "", "https://example.edu/good")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Good", records[0].Title)
}
