// ABOUTME: Scope and match status value types shared by every search domain
// ABOUTME: Defines the three independent result scopes and their score scales

package domain

import (
	"fmt"
	"strings"
)

// Scope identifies one of the independent search domains
type Scope string

const (
	// ScopeNews searches news articles
	ScopeNews Scope = "news"

	// ScopeCompanies searches company websites
	ScopeCompanies Scope = "companies"

	// ScopePeople searches public profiles
	ScopePeople Scope = "people"
)

// Scopes lists every scope in display order
var Scopes = []Scope{ScopeNews, ScopeCompanies, ScopePeople}

// ParseScope converts a user supplied string into a Scope
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeNews:
		return ScopeNews, nil
	case ScopeCompanies, "company":
		return ScopeCompanies, nil
	case ScopePeople, "person":
		return ScopePeople, nil
	}
	return "", fmt.Errorf("unknown scope %q (want news, companies or people)", s)
}

// ScoreMax is the upper bound of the significance/relevance scale for the scope.
// News is scored 0-5, companies and people 0-100.
func (s Scope) ScoreMax() float64 {
	if s == ScopeNews {
		return 5
	}
	return 100
}

// MatchStatus is the tri-state label used for filtering
type MatchStatus string

const (
	MatchStatusMatch   MatchStatus = "Match"
	MatchStatusNoMatch MatchStatus = "No Match"
	MatchStatusNeutral MatchStatus = "Neutral"
)

// Normalize maps unknown or empty values to Neutral
func (m MatchStatus) Normalize() MatchStatus {
	switch m {
	case MatchStatusMatch, MatchStatusNoMatch, MatchStatusNeutral:
		return m
	}
	return MatchStatusNeutral
}

// MatchFilter selects rows by match status; MatchAll disables the filter
type MatchFilter string

// MatchAll lets every match status through
const MatchAll MatchFilter = "All"

// ParseMatchFilter accepts All, Match, No Match or Neutral (case-insensitive)
func ParseMatchFilter(s string) (MatchFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return MatchAll, nil
	case "match":
		return MatchFilter(MatchStatusMatch), nil
	case "no match", "no-match", "nomatch":
		return MatchFilter(MatchStatusNoMatch), nil
	case "neutral":
		return MatchFilter(MatchStatusNeutral), nil
	}
	return "", fmt.Errorf("unknown match filter %q", s)
}

// Allows reports whether a row with the given status passes the filter
func (f MatchFilter) Allows(status MatchStatus) bool {
	if f == "" || f == MatchAll {
		return true
	}
	return MatchStatus(f) == status.Normalize()
}
