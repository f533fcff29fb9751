// ABOUTME: News heuristics for source labels, company guesses and publish dates
// ABOUTME: Publish dates come from page metatags, falling back to a caller supplied date

package extract

import (
	"strings"
	"time"
	"unicode/utf16"

	"leadsearch-api/core/domain"
	timeutil "leadsearch-api/pkg/utils/time"
)

// publishedDateTags are consulted in order
var publishedDateTags = []string{
	"article:published_time",
	"og:updated_time",
	"og:published_time",
	"date",
	"pubdate",
}

var newsTitleSeparators = []string{" - ", " | ", ": "}

// maxNewsCompanyLength bounds the title prefix accepted as a company name,
// counted in UTF-16 code units
const maxNewsCompanyLength = 40

// NewsCompany guesses the company a headline is about: the text before the
// first separator when it is short enough, else the first three words.
// Short headlines without a separator are returned whole.
func NewsCompany(title string) string {
	for _, sep := range newsTitleSeparators {
		first, _, _ := strings.Cut(title, sep)
		if first != "" && len(utf16.Encode([]rune(first))) <= maxNewsCompanyLength {
			return strings.TrimSpace(first)
		}
	}
	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// NewsSource labels the publisher: site label, then link host, then "News"
func NewsSource(r domain.RawSearchResult) string {
	if r.DisplayLink != "" {
		return r.DisplayLink
	}
	if host := Hostname(r.Link); host != "" {
		return host
	}
	return "News"
}

// PublishedDate returns the result's publish date as YYYY-MM-DD, or fallback's date
func PublishedDate(r domain.RawSearchResult, fallback time.Time) string {
	return timeutil.ISODate(timeutil.ParseWithDefault(dateMetatag(r), fallback))
}

// MetatagDate parses the first non-empty publish-date metatag. Later tags
// are not consulted when that one does not parse.
func MetatagDate(r domain.RawSearchResult) (string, bool) {
	t := timeutil.ParseFlexibleTime(dateMetatag(r))
	if t.IsZero() {
		return "", false
	}
	return timeutil.ISODate(t), true
}

func dateMetatag(r domain.RawSearchResult) string {
	for _, tag := range publishedDateTags {
		if raw := r.Metatags[tag]; raw != "" {
			return raw
		}
	}
	return ""
}
