// Package feeds handles listing URLs that serve an RSS or Atom feed
// instead of an HTML page. Feed items already carry title, link,
// description, and publication date, so they convert to records
// directly without per-article fetches.
package feeds

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/mzerrouki/campusnews/record"
	"github.com/mzerrouki/campusnews/scraper"
)

// IsFeed reports whether a fetched body looks like an RSS or Atom
// document rather than an HTML page.
func IsFeed(content string) bool {
	head := strings.TrimSpace(content)
	if strings.HasPrefix(head, "<?xml") {
		return strings.Contains(head, "<rss") || strings.Contains(head, "<feed")
	}
	return strings.HasPrefix(head, "<rss") || strings.HasPrefix(head, "<feed")
}

// ParseFeed parses feed content. The gofeed library detects and handles
// both RSS and Atom formats.
func ParseFeed(content string) (*gofeed.Feed, error) {
	feed, err := gofeed.NewParser().ParseString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// FeedToRecords converts all items of a feed to records, preserving the
// feed's item order.
func FeedToRecords(feed *gofeed.Feed) []record.Record {
	records := make([]record.Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		records = append(records, feedItemToRecord(item))
	}
	return records
}

// feedItemToRecord maps a single feed item onto a record. The published
// timestamp (or the updated timestamp when publication is missing) is
// truncated to a calendar date; items with neither get no date.
func feedItemToRecord(item *gofeed.Item) record.Record {
	var date *time.Time
	if item.PublishedParsed != nil {
		date = calendarDate(*item.PublishedParsed)
	} else if item.UpdatedParsed != nil {
		date = calendarDate(*item.UpdatedParsed)
	}

	return record.New(
		scraper.CleanText(item.Title),
		date,
		scraper.CleanText(item.Description),
		item.Link,
	)
}

func calendarDate(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
