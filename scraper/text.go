// Package scraper extracts structured article data from loosely
// structured HTML: link discovery on listing pages, per-article field
// extraction, and pagination lookup. Every extractor degrades to an
// empty or absent value instead of failing.
package scraper

import "strings"

// CleanText collapses all whitespace runs (spaces, tabs, newlines,
// carriage returns) to single spaces and trims the ends. It never fails;
// empty input yields an empty string.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
