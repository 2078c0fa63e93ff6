package record

import (
	"time"

	"github.com/google/uuid"
)

// Record represents a single extracted article: its title, publication
// date (when one could be determined), a short description, and the
// absolute URL it was discovered at.
type Record struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Date         *time.Time `json:"date,omitempty"`
	Description  string     `json:"description"`
	Link         string     `json:"link"`
	DiscoveredAt time.Time  `json:"discovered_at"`
}

// New creates a record with a fresh ID and the current discovery time.
func New(title string, date *time.Time, description, link string) Record {
	return Record{
		ID:           uuid.New(),
		Title:        title,
		Date:         date,
		Description:  description,
		Link:         link,
		DiscoveredAt: time.Now(),
	}
}

// DateString returns the date formatted as YYYY-MM-DD, or an empty string
// when no date was extracted. An unknown date is never substituted with
// the current date.
func (r Record) DateString() string {
	if r.Date == nil {
		return ""
	}
	return r.Date.Format("2006-01-02")
}
