// ABOUTME: Snippet heuristics for company facts (employees, funding, location, founding year, industry)
// ABOUTME: Each heuristic is an ordered regex list where the first accepted match wins

package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Patterns are listed in priority order.
var (
	employeePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+\s*[-–]\s*\d+)\s*employees?`),
		regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+)\+?\s*employees?`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*employees?`),
		regexp.MustCompile(`(?i)team\s*size:?\s*(\d+\s*[-–]\s*\d+)`),
	}

	fundingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)raised\s*\$?(\d[\d.,]*[mbk]?)\s*(million|billion|thousand)?`),
		regexp.MustCompile(`(?i)funding:\s*\$?(\d[\d.,]*[mbk]?)\s*(million|billion|thousand)?`),
		regexp.MustCompile(`(?i)\$?(\d[\d.,]*[mbk]?)\s*(million|billion|thousand)?\s*in\s*funding`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i:based\s+in)\s+([^,.]+(?:,\s*[A-Z]{2}\b)?)`),
		regexp.MustCompile(`(?i:location):?\s*([^,.]+(?:,\s*[A-Z]{2}\b)?)`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2})\b`),
	}

	foundedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)founded\s+(?:in\s+)?(\d{4})`),
		regexp.MustCompile(`(?i)established\s+(?:in\s+)?(\d{4})`),
		regexp.MustCompile(`(?i)since\s+(\d{4})`),
	}
)

// industryTags is the ordered industry vocabulary; the first tag found wins.
var industryTags = []string{
	"AI",
	"Machine Learning",
	"SaaS",
	"FinTech",
	"HealthTech",
	"EdTech",
	"E-commerce",
	"Cybersecurity",
	"Blockchain",
	"IoT",
	"Robotics",
}

var industryPatterns = buildIndustryPatterns(industryTags)

func buildIndustryPatterns(tags []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(tags))
	for i, tag := range tags {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tag) + `\b`)
	}
	return patterns
}

// EmployeeCount extracts a head count or range such as "50-200"
func EmployeeCount(snippet string) (string, bool) {
	return firstMatch(employeePatterns, snippet, func(m []string) (string, bool) {
		return strings.Join(strings.Fields(m[1]), ""), true
	})
}

// Funding extracts a funding amount and normalizes the magnitude to an
// uppercase letter: "raised $12 million" -> "$12M", "raised 3.5b" -> "$3.5B".
func Funding(snippet string) (string, bool) {
	return firstMatch(fundingPatterns, snippet, func(m []string) (string, bool) {
		amount := strings.TrimRight(m[1], ".,")
		if amount == "" {
			return "", false
		}
		if last := amount[len(amount)-1]; last == 'm' || last == 'b' || last == 'k' {
			amount = amount[:len(amount)-1] + strings.ToUpper(string(last))
		}
		if len(m) > 2 && m[2] != "" && !endsWithMagnitude(amount) {
			amount += strings.ToUpper(m[2][:1])
		}
		return "$" + amount, true
	})
}

func endsWithMagnitude(amount string) bool {
	last := amount[len(amount)-1]
	return last == 'M' || last == 'B' || last == 'K'
}

// Location extracts a place such as "Austin, TX" or "Berlin"
func Location(snippet string) (string, bool) {
	return firstMatch(locationPatterns, snippet, func(m []string) (string, bool) {
		loc := strings.TrimSpace(m[1])
		return loc, loc != ""
	})
}

// FoundedYear extracts a founding year within [1900, current year]
func FoundedYear(snippet string) (string, bool) {
	return foundedYearBefore(snippet, time.Now().Year())
}

// foundedYearBefore discards matches outside [1900, maxYear] and keeps looking
func foundedYearBefore(snippet string, maxYear int) (string, bool) {
	return firstMatch(foundedPatterns, snippet, func(m []string) (string, bool) {
		year, err := strconv.Atoi(m[1])
		if err != nil || year < 1900 || year > maxYear {
			return "", false
		}
		return m[1], true
	})
}

// Industry tags the result with the first vocabulary entry found in the
// snippet, falling back to the user's query.
func Industry(snippet, query string) (string, bool) {
	for _, text := range []string{snippet, query} {
		if text == "" {
			continue
		}
		for i, re := range industryPatterns {
			if re.MatchString(text) {
				return industryTags[i], true
			}
		}
	}
	return "", false
}
