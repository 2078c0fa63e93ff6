package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/mzerrouki/campusnews/record"
)

// contentContainers lists known class names of article body containers,
// tried in order; the first container holding a paragraph supplies the
// description.
var contentContainers = []string{
	"entry-content",
	"post-content",
	"content",
	"td-post-content",
	"article-body",
	"article-content",
	"main-content",
}

// ExtractArticle extracts a record from a single article page. It never
// fails: every field falls back to an empty or absent value when the
// page carries nothing usable.
//
//   - Title: first <h1>, else the page <title>, normalized.
//   - Description: meta description, else the first paragraph inside a
//     known content container, else the first paragraph anywhere.
//   - Date: the event-date cascade (see ExtractEventDate); absent when
//     nothing resolves.
//   - Link: the caller-supplied article URL.
func ExtractArticle(doc *goquery.Document, articleURL string) record.Record {
	var title string
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		title = CleanText(h1.Text())
	} else {
		title = CleanText(doc.Find("title").First().Text())
	}

	description := extractDescription(doc)
	date := ExtractEventDate(doc)

	return record.New(title, date, description, articleURL)
}

func extractDescription(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if desc := CleanText(content); desc != "" {
			return desc
		}
	}

	for _, class := range contentContainers {
		container := doc.Find("." + class).First()
		if container.Length() == 0 {
			continue
		}
		if p := container.Find("p").First(); p.Length() > 0 {
			return CleanText(p.Text())
		}
	}

	return CleanText(doc.Find("p").First().Text())
}
