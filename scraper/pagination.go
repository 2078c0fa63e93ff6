package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindNextPage locates the next listing page from pagination markup.
// It first checks for anchors with conventional "next" class names, then
// scans all anchors for visible text containing "next" or a right-arrow
// glyph. Returns ok=false when the page has no recognizable next link,
// which signals that pagination is exhausted.
func FindNextPage(doc *goquery.Document, currentURL string) (string, bool) {
	base, err := url.Parse(currentURL)
	if err != nil {
		return "", false
	}

	next := doc.Find("a.next, a.next-page, a.pagination-next").First()
	if href, ok := next.Attr("href"); ok {
		if abs := resolveRef(base, href); abs != "" {
			return abs, true
		}
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if !strings.Contains(text, "next") && !strings.Contains(text, "→") {
			return true
		}
		href, _ := s.Attr("href")
		if abs := resolveRef(base, href); abs != "" {
			found = abs
			return false
		}
		return true
	})

	return found, found != ""
}
