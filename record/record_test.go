package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNew verifies new records get an ID and discovery timestamp.
func TestNew(t *testing.T) {
	rec := New("Title", nil, "Desc", "https://example.edu/x")

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Title", rec.Title)
	assert.Equal(t, "Desc", rec.Description)
	assert.Equal(t, "https://example.edu/x", rec.Link)
	assert.False(t, rec.DiscoveredAt.IsZero())
}

// TestDateString verifies date serialization, including absence.
func TestDateString(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	withDate := New("A", &date, "", "https://example.edu/a")
	assert.Equal(t, "2024-03-05", withDate.DateString())

	withoutDate := New("B", nil, "", "https://example.edu/b")
	assert.Equal(t, "", withoutDate.DateString(), "absent date must never become today")
}
