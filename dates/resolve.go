// Package dates resolves free-form date strings into calendar dates. It
// layers several parsing passes so that ISO timestamps, the usual Latin
// formats, and Arabic month names all normalize to the same value.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Latin layouts tried in order after the ISO pass. Both day-first and
// month-first spellings are included; slash and dash numeric dates are
// day-first.
var latinLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// arabicMonths maps Arabic month names to month numbers. Several months
// have more than one common spelling.
var arabicMonths = map[string]time.Month{
	"يناير":  time.January,
	"فبراير": time.February,
	"مارس":   time.March,
	"أبريل":  time.April,
	"إبريل":  time.April,
	"ماي":    time.May,
	"مايو":   time.May,
	"يونيو":  time.June,
	"يوليو":  time.July,
	"أغسطس":  time.August,
	"اغسطس":  time.August,
	"سبتمبر": time.September,
	"أكتوبر": time.October,
	"اكتوبر": time.October,
	"نوفمبر": time.November,
	"ديسمبر": time.December,
	"دجمبر":  time.December,
}

var (
	// Strings shaped like an ISO date or datetime, e.g. "2024-03-15" or
	// "2024-03-15T10:30:00Z".
	isoShaped = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ].*)?$`)

	// "<Month> <day>, <year>" anywhere in the text.
	latinMonthPattern = regexp.MustCompile(`[A-Za-z]+\s+\d{1,2},\s*\d{4}`)

	arabicMonthPattern = buildArabicPattern()
)

func buildArabicPattern() *regexp.Regexp {
	names := make([]string, 0, len(arabicMonths))
	for name := range arabicMonths {
		names = append(names, name)
	}
	return regexp.MustCompile(`(` + strings.Join(names, "|") + `)\s+(\d{1,2})[,\s]+(\d{4})`)
}

// ResolveDate parses a raw date string into a calendar date, trying each
// known format in turn and returning the first success. The returned time
// is midnight UTC of the resolved day. When no format matches, or the
// matched day/month/year is not a real calendar date, ok is false; the
// caller must treat that as "no date", never as "today".
func ResolveDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	// ISO-8601 / RFC datetimes, including a trailing Z offset. The parse
	// is gated to ISO-shaped strings so that day-first slash dates below
	// are never misread as month-first.
	if isoShaped.MatchString(s) {
		if t, err := dateparse.ParseAny(s); err == nil {
			return midnight(t), true
		}
	}

	for _, layout := range latinLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}

	if t, ok := FindArabicDate(s); ok {
		return t, true
	}

	return FindLatinDate(s)
}

// FindArabicDate searches text for "<Arabic month> <day>[,] <year>" and
// resolves the first match. The pattern is not anchored, so surrounding
// prose does not prevent a match.
func FindArabicDate(text string) (time.Time, bool) {
	m := arabicMonthPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	month := arabicMonths[m[1]]
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return makeDate(year, month, day)
}

// FindLatinDate searches text for "<Month> <day>, <year>" and resolves
// the first match against the long then short month-name layouts.
func FindLatinDate(text string) (time.Time, bool) {
	match := latinMonthPattern.FindString(text)
	if match == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("January 2, 2006", match); err == nil {
		return midnight(t), true
	}
	if t, err := time.Parse("Jan 2, 2006", match); err == nil {
		return midnight(t), true
	}
	return time.Time{}, false
}

// makeDate builds a date and verifies the components survive the round
// trip, rejecting combinations like February 30 that time.Date would
// silently normalize into March.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
