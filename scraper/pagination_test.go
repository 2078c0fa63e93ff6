package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindNextPage_ClassNames verifies conventional "next" class names
// are found first.
func TestFindNextPage_ClassNames(t *testing.T) {
	for _, class := range []string{"next", "next-page", "pagination-next"} {
		html := `<html><body>
			<a href="/news">Unrelated</a>
			<a class="` + class + `" href="/news/page/2">2</a>
		</body></html>`

		next, ok := FindNextPage(mustParse(t, html), "https://example.edu/news")

		require.True(t, ok, "class %q", class)
		assert.Equal(t, "https://example.edu/news/page/2", next)
	}
}

// TestFindNextPage_TextMatch verifies anchors with "next" text or a
// right-arrow glyph are used when no class matches.
func TestFindNextPage_TextMatch(t *testing.T) {
	html := `<html><body>
		<a href="/about">About</a>
		<a href="/news/page/3">Next page</a>
	</body></html>`

	next, ok := FindNextPage(mustParse(t, html), "https://example.edu/news/page/2")
	require.True(t, ok)
	assert.Equal(t, "https://example.edu/news/page/3", next)

	html = `<html><body>
		<a href="/news/page/3">→</a>
	</body></html>`

	next, ok = FindNextPage(mustParse(t, html), "https://example.edu/news/page/2")
	require.True(t, ok)
	assert.Equal(t, "https://example.edu/news/page/3", next)
}

// TestFindNextPage_CaseInsensitive verifies the text match ignores case.
func TestFindNextPage_CaseInsensitive(t *testing.T) {
	html := `<html><body><a href="/p2">NEXT »</a></body></html>`

	next, ok := FindNextPage(mustParse(t, html), "https://example.edu/p1")

	require.True(t, ok)
	assert.Equal(t, "https://example.edu/p2", next)
}

// TestFindNextPage_Absent verifies exhaustion is reported when no anchor
// matches any heuristic, even on link-heavy pages.
func TestFindNextPage_Absent(t *testing.T) {
	html := `<html><body>
		<a href="/a">Home</a>
		<a href="/b">Contact</a>
		<a href="/c">Previous</a>
		<a href="/d">Archives</a>
	</body></html>`

	next, ok := FindNextPage(mustParse(t, html), "https://example.edu/news")

	assert.False(t, ok)
	assert.Empty(t, next)
}
