package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCleanText verifies whitespace collapsing and trimming.
func TestCleanText(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"   ":                       "",
		"hello":                     "hello",
		"  hello  world  ":          "hello world",
		"line\none\r\nline two":     "line one line two",
		"tabs\t\tand\tspaces":       "tabs and spaces",
		"\n\r\t mixed \t\r\n runs ": "mixed runs",
	}

	for input, want := range cases {
		assert.Equal(t, want, CleanText(input), "input %q", input)
	}
}

// TestCleanText_NoResidualWhitespace verifies the output never contains
// tabs, newlines, carriage returns, or runs of spaces.
func TestCleanText_NoResidualWhitespace(t *testing.T) {
	inputs := []string{
		"a\tb\nc\rd",
		"a  b   c    d",
		"\t\n\r  a  \r\n\t",
		"نشاط\n\tعلمي  جديد",
	}

	for _, input := range inputs {
		out := CleanText(input)
		assert.NotContains(t, out, "\t")
		assert.NotContains(t, out, "\n")
		assert.NotContains(t, out, "\r")
		assert.NotContains(t, out, "  ")
		assert.Equal(t, strings.TrimSpace(out), out)
	}
}
