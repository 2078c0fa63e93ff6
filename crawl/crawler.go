// Package crawl drives the listing/article traversal loop: fetch a
// listing page, discover article links, extract a record per article,
// follow pagination, and stop on exhaustion, a page ceiling, or a
// listing fetch failure.
package crawl

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/mzerrouki/campusnews/feeds"
	"github.com/mzerrouki/campusnews/fetch"
	"github.com/mzerrouki/campusnews/record"
	"github.com/mzerrouki/campusnews/scraper"
	"github.com/mzerrouki/campusnews/sink"
)

// Config holds the crawl parameters.
type Config struct {
	// StartURL is the first listing page.
	StartURL string
	// MaxPages caps the number of listing pages traversed; zero or
	// negative means no cap.
	MaxPages int
	// Concurrency bounds parallel article fetches per listing page.
	// Values below two keep article fetches strictly sequential.
	Concurrency int
	// SkipLink, when set, is consulted for each discovered article URL;
	// links it reports true for are not fetched. Used to skip articles
	// already collected by earlier runs.
	SkipLink func(link string) bool
}

// Result holds the outcome of one crawl run.
type Result struct {
	// Records in discovery order.
	Records []record.Record
	// Pages is the number of listing pages processed.
	Pages int
}

// Crawler walks a site's paginated listing and extracts one record per
// discovered article. It owns all crawl state for the duration of a run;
// fetched content is treated as immutable.
type Crawler struct {
	fetcher fetch.Fetcher
	sink    sink.Sink // optional; receives records as they are extracted
	config  Config
}

// New creates a crawler. The sink may be nil, in which case records are
// only accumulated in the result.
func New(fetcher fetch.Fetcher, s sink.Sink, config Config) *Crawler {
	return &Crawler{fetcher: fetcher, sink: s, config: config}
}

// Run executes the crawl. Listing pages are fetched strictly
// sequentially, since each depends on the previous page's next link. A
// failed article fetch is logged and skipped; a failed listing fetch
// stops the run. The returned result is valid even when err is non-nil:
// it holds everything collected before the run stopped.
func (c *Crawler) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	visited := make(map[string]bool)
	current := c.config.StartURL

	for current != "" && (c.config.MaxPages <= 0 || result.Pages < c.config.MaxPages) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// Malformed next links can point back to a page already seen;
		// treat a revisit as exhaustion rather than looping forever.
		if visited[current] {
			log.Printf("WARN: Already visited %s, stopping", current)
			break
		}
		visited[current] = true
		result.Pages++

		log.Printf("INFO: Processing page %d: %s", result.Pages, current)

		html, err := c.fetcher.Fetch(ctx, current)
		if err != nil {
			log.Printf("ERROR: Failed to fetch listing page %s: %v", current, err)
			return result, fmt.Errorf("failed to fetch listing page: %w", err)
		}

		// Some listing URLs serve RSS/Atom; feed items convert to
		// records directly and carry no pagination.
		if feeds.IsFeed(html) {
			feed, err := feeds.ParseFeed(html)
			if err != nil {
				log.Printf("ERROR: Failed to parse feed %s: %v", current, err)
				return result, err
			}
			if err := c.collect(result, feeds.FeedToRecords(feed)); err != nil {
				return result, err
			}
			break
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			log.Printf("ERROR: Failed to parse listing page %s: %v", current, err)
			return result, fmt.Errorf("failed to parse listing page: %w", err)
		}

		links := c.filterKnown(scraper.ExtractLinks(doc, current))
		if len(links) == 0 {
			log.Printf("INFO: No articles found on page %d", result.Pages)
		} else {
			log.Printf("INFO: Found %d article(s) on page %d", len(links), result.Pages)
			if err := c.collect(result, c.fetchArticles(ctx, links)); err != nil {
				return result, err
			}
		}

		next, ok := scraper.FindNextPage(doc, current)
		if !ok {
			log.Println("INFO: No next page found, stopping")
			break
		}
		current = next
	}

	return result, nil
}

// collect appends records to the result and streams them to the sink.
func (c *Crawler) collect(result *Result, records []record.Record) error {
	for _, rec := range records {
		result.Records = append(result.Records, rec)
		if c.sink != nil {
			if err := c.sink.Write(rec); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}
	return nil
}

// filterKnown drops article URLs the SkipLink predicate recognizes as
// already collected.
func (c *Crawler) filterKnown(urls []string) []string {
	if c.config.SkipLink == nil {
		return urls
	}
	kept := urls[:0:0]
	for _, u := range urls {
		if c.config.SkipLink(u) {
			log.Printf("INFO: Skipping already collected article %s", u)
			continue
		}
		kept = append(kept, u)
	}
	return kept
}

// fetchArticles extracts a record for each article URL. With
// Concurrency above one, a bounded worker pool fetches articles in
// parallel; results are reassembled into discovery order and one
// article's failure never cancels its siblings. Links arrive already
// deduplicated, so each URL has at most one fetch in flight.
func (c *Crawler) fetchArticles(ctx context.Context, urls []string) []record.Record {
	slots := make([]*record.Record, len(urls))

	if c.config.Concurrency <= 1 {
		for i, u := range urls {
			slots[i] = c.fetchArticle(ctx, u)
		}
	} else {
		semaphore := make(chan struct{}, c.config.Concurrency)
		var wg sync.WaitGroup
		for i, u := range urls {
			semaphore <- struct{}{}
			wg.Add(1)
			go func(i int, u string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				slots[i] = c.fetchArticle(ctx, u)
			}(i, u)
		}
		wg.Wait()
	}

	records := make([]record.Record, 0, len(urls))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

// fetchArticle fetches and extracts a single article. Failures are
// logged and yield nil; the crawl continues with the next article.
func (c *Crawler) fetchArticle(ctx context.Context, url string) *record.Record {
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Printf("WARN: Failed to fetch article %s: %v", url, err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("WARN: Failed to parse article %s: %v", url, err)
		return nil
	}

	rec := scraper.ExtractArticle(doc, url)
	return &rec
}
