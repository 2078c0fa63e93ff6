package scraper

import (
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mzerrouki/campusnews/dates"
)

// dateMetaNames lists meta tag names/properties commonly carrying a
// publication date, checked in order.
var dateMetaNames = []string{
	"article:published_time",
	"published_time",
	"date",
	"dcterms.date",
	"dc.date",
	"pubdate",
	"publication_date",
	"datePublished",
}

// dateClassPattern matches class or id values suggesting a date, time,
// or publication concept, in Latin or Arabic.
var dateClassPattern = regexp.MustCompile(`(?i)date|time|post-date|entry-date|تاريخ|نشر`)

// ExtractEventDate tries several sources for an article's event or
// publication date, committing to the first that resolves:
//
//  1. the first <time> element's datetime attribute,
//  2. that same element's display text,
//  3. known date meta tags,
//  4. any element whose class or id suggests a date,
//  5. a Latin "<Month> <day>, <year>" pattern in the page text,
//  6. an Arabic month-name pattern in the page text.
//
// Returns nil when no source yields a valid calendar date.
func ExtractEventDate(doc *goquery.Document) *time.Time {
	if timeTag := doc.Find("time").First(); timeTag.Length() > 0 {
		if attr, ok := timeTag.Attr("datetime"); ok {
			if t, ok := dates.ResolveDate(attr); ok {
				return &t
			}
		}
		if t, ok := dates.ResolveDate(CleanText(timeTag.Text())); ok {
			return &t
		}
	}

	for _, name := range dateMetaNames {
		sel := doc.Find(`meta[property="` + name + `"]`)
		if sel.Length() == 0 {
			sel = doc.Find(`meta[name="` + name + `"]`)
		}
		if content, ok := sel.First().Attr("content"); ok {
			if t, ok := dates.ResolveDate(content); ok {
				return &t
			}
		}
	}

	var fromClass *time.Time
	doc.Find("[class],[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		if !dateClassPattern.MatchString(class) && !dateClassPattern.MatchString(id) {
			return true
		}
		if t, ok := dates.ResolveDate(CleanText(s.Text())); ok {
			fromClass = &t
			return false
		}
		return true
	})
	if fromClass != nil {
		return fromClass
	}

	bodyText := CleanText(doc.Text())
	if t, ok := dates.FindLatinDate(bodyText); ok {
		return &t
	}
	if t, ok := dates.FindArabicDate(bodyText); ok {
		return &t
	}

	return nil
}
