// ABOUTME: Regex helpers shared by the snippet heuristics
// ABOUTME: Implements the ordered first-match-wins evaluation

package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	htmlutil "leadsearch-api/pkg/utils/html"
)

// firstMatch evaluates patterns in order and returns the first capture group
// that accept approves. A nil accept approves everything.
func firstMatch(patterns []*regexp.Regexp, text string, accept func(m []string) (string, bool)) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if accept == nil {
			return strings.TrimSpace(m[1]), true
		}
		if v, ok := accept(m); ok {
			return v, true
		}
	}
	return "", false
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CleanText strips markup and entities from provider text
func CleanText(s string) string {
	return htmlutil.StripHTML(s)
}
