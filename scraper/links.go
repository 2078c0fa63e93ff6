package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks finds candidate article URLs on a listing page. Three
// strategies contribute cumulatively, each adding only URLs not already
// seen, so the result is deduplicated and keeps discovery order:
//
//  1. the first link inside each <article> element,
//  2. the first link inside each h1-h4 heading,
//  3. every same-site link on the page (domain suffix match, so
//     subdomains qualify), excluding links back to the listing page
//     itself.
//
// The same-site pass is deliberately broad; on pages without
// recognizable article containers it trades precision for coverage,
// and downstream extraction tolerates non-article pages.
func ExtractLinks(doc *goquery.Document, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	add := func(abs string) {
		if abs != "" && !seen[abs] {
			seen[abs] = true
			links = append(links, abs)
		}
	}

	doc.Find("article").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Find("a[href]").First().Attr("href"); ok {
			add(resolveRef(base, href))
		}
	})

	doc.Find("h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Find("a[href]").First().Attr("href"); ok {
			add(resolveRef(base, href))
		}
	})

	normalizedBase := strings.TrimRight(baseURL, "/")
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		abs := resolveRef(base, href)
		if abs == "" {
			return
		}
		u, err := url.Parse(abs)
		if err != nil || !strings.HasSuffix(u.Host, base.Host) {
			return
		}
		// Skip pagination links pointing back to the current page.
		if strings.TrimRight(abs, "/") == normalizedBase {
			return
		}
		add(abs)
	})

	return links
}

// resolveRef resolves href against base, returning an absolute URL or an
// empty string when the reference is unparseable.
func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
