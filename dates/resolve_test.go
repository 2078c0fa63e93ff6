package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveDate_KnownFormats verifies that every supported format
// normalizes to the same calendar date.
func TestResolveDate_KnownFormats(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	inputs := []string{
		"2024-03-15",
		"2024-03-15T10:30:00Z",
		"March 15, 2024",
		"Mar 15, 2024",
		"15 March 2024",
		"15 Mar 2024",
		"15/03/2024",
		"15-03-2024",
	}

	for _, input := range inputs {
		got, ok := ResolveDate(input)
		require.True(t, ok, "should resolve %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

// TestResolveDate_DayFirstSlashes verifies slash and dash numeric dates
// are read day-first, not month-first.
func TestResolveDate_DayFirstSlashes(t *testing.T) {
	got, ok := ResolveDate("03/04/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC), got)
}

// TestResolveDate_Arabic verifies Arabic month-name resolution,
// including alternate spellings.
func TestResolveDate_Arabic(t *testing.T) {
	cases := map[string]time.Time{
		"مارس 15, 2024":  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		"مارس 15 2024":   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		"أبريل 1, 2023":  time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		"إبريل 1, 2023":  time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		"ماي 20, 2022":   time.Date(2022, time.May, 20, 0, 0, 0, 0, time.UTC),
		"مايو 20, 2022":  time.Date(2022, time.May, 20, 0, 0, 0, 0, time.UTC),
		"أغسطس 9, 2021":  time.Date(2021, time.August, 9, 0, 0, 0, 0, time.UTC),
		"اغسطس 9, 2021":  time.Date(2021, time.August, 9, 0, 0, 0, 0, time.UTC),
		"أكتوبر 2, 2020": time.Date(2020, time.October, 2, 0, 0, 0, 0, time.UTC),
		"اكتوبر 2, 2020": time.Date(2020, time.October, 2, 0, 0, 0, 0, time.UTC),
		"ديسمبر 31, 2019": time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC),
		"دجمبر 31, 2019":  time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	for input, want := range cases {
		got, ok := ResolveDate(input)
		require.True(t, ok, "should resolve %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

// TestResolveDate_ArabicUnanchored verifies the Arabic pattern matches
// inside surrounding text.
func TestResolveDate_ArabicUnanchored(t *testing.T) {
	got, ok := ResolveDate("نشر بتاريخ مارس 15, 2024 بالجامعة")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)
}

// TestResolveDate_LatinFallback verifies the anywhere-in-text Latin
// month pattern.
func TestResolveDate_LatinFallback(t *testing.T) {
	got, ok := ResolveDate("Published on March 15, 2024 by the press office")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = ResolveDate("Posted Mar 2, 2024 at noon")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), got)
}

// TestResolveDate_InvalidCalendarDate verifies impossible dates are
// rejected rather than normalized.
func TestResolveDate_InvalidCalendarDate(t *testing.T) {
	for _, input := range []string{
		"February 30, 2024",
		"2024-02-30",
		"31/04/2024",
		"فبراير 30, 2024",
	} {
		_, ok := ResolveDate(input)
		assert.False(t, ok, "should reject %q", input)
	}
}

// TestResolveDate_NoDate verifies empty and unparseable input yields
// absent without panicking.
func TestResolveDate_NoDate(t *testing.T) {
	for _, input := range []string{"", "   ", "hello world", "12345", "next Tuesday"} {
		_, ok := ResolveDate(input)
		assert.False(t, ok, "should not resolve %q", input)
	}
}
