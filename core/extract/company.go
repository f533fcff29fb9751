// ABOUTME: Company and person heuristics over search result titles and site labels
// ABOUTME: Pure functions that degrade to defaults instead of failing

package extract

import (
	"regexp"
	"strings"

	"leadsearch-api/core/domain"
)

// UnknownName is used when no heuristic yields a name
const UnknownName = "Unknown"

var wwwPrefix = regexp.MustCompile(`(?i)^www\.`)

// CompanyName guesses the company behind a result. Priority:
//  1. the site label: strip "www.", take the first DNS label, capitalize
//  2. the title up to the first "|" or "—"
//  3. "Unknown"
func CompanyName(r domain.RawSearchResult) string {
	if name, ok := companyFromSiteLabel(r.DisplayLink); ok {
		return name
	}
	if name, ok := companyFromTitle(r.Title); ok {
		return name
	}
	return UnknownName
}

func companyFromSiteLabel(displayLink string) (string, bool) {
	label := wwwPrefix.ReplaceAllString(strings.TrimSpace(displayLink), "")
	base, _, _ := strings.Cut(label, ".")
	if base == "" {
		return "", false
	}
	return capitalize(base), true
}

func companyFromTitle(title string) (string, bool) {
	t, _, _ := strings.Cut(title, "|")
	t, _, _ = strings.Cut(t, "—")
	t = strings.TrimSpace(t)
	return t, t != ""
}

// Person is the structured form of a profile-style title
type Person struct {
	Name    string
	Role    string
	Company string
}

// ParsePersonTitle parses titles shaped like "Name - Role - Company | Site".
// The trailing site suffix is dropped and the rest split on " - ".
// Missing role or company come back empty; a missing name is "Unknown".
func ParsePersonTitle(title string) Person {
	cleaned := strings.TrimSpace(title)
	if idx := strings.LastIndex(cleaned, " | "); idx >= 0 {
		cleaned = strings.TrimSpace(cleaned[:idx])
	}

	parts := strings.Split(cleaned, " - ")
	at := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	p := Person{Name: at(0), Role: at(1), Company: at(2)}
	if p.Name == "" {
		p.Name = UnknownName
	}
	return p
}

// MatchedKeywords returns the keywords that occur (case-insensitively) in any of texts
func MatchedKeywords(keywords []string, texts ...string) []string {
	haystack := strings.ToLower(strings.Join(texts, " "))
	var matched []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" && strings.Contains(haystack, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}
