package session

import (
	"leadsearch-api/core/domain"
)

// Filter is shared by every scope. Thresholds are stored as set and clamped
// to the scope's score scale when evaluated, so switching scopes never loses them.
type Filter struct {
	Match           domain.MatchFilter
	SignificanceMin float64
	RelevanceMin    float64
}

// Allows reports whether row passes the filter in scope
func (f Filter) Allows(scope domain.Scope, row domain.Row) bool {
	if !f.Match.Allows(row.Match()) {
		return false
	}
	scoreMax := scope.ScoreMax()
	sig, rel := row.Scores()
	return sig >= min(f.SignificanceMin, scoreMax) && rel >= min(f.RelevanceMin, scoreMax)
}

// Filter returns the current filter
func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter replaces the filter
func (s *Session) SetFilter(f Filter) {
	if f.Match == "" {
		f.Match = domain.MatchAll
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Filtered returns the scope's rows that pass the filter, in original order
func (s *Session) Filtered(scope domain.Scope) []domain.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filteredLocked(scope)
}

func (s *Session) filteredLocked(scope domain.Scope) []domain.Row {
	st := s.states[scope]
	if st == nil {
		return nil
	}
	var rows []domain.Row
	for _, r := range st.Rows {
		if s.filter.Allows(scope, r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Counts returns the filtered row count per scope
func (s *Session) Counts() map[domain.Scope]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[domain.Scope]int, len(s.states))
	for scope := range s.states {
		counts[scope] = len(s.filteredLocked(scope))
	}
	return counts
}
