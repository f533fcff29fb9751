package session

import (
	"encoding/csv"
	"fmt"
	"io"

	"leadsearch-api/core/domain"
)

// Columns returns the displayed column headers of the scope in display order
func (s *Session) Columns(scope domain.Scope) []string {
	switch scope {
	case domain.ScopeCompanies:
		return append([]string(nil), domain.CompanyHeaders...)
	case domain.ScopePeople:
		return append([]string(nil), domain.PeopleHeaders...)
	default:
		return append([]string(nil), s.opts.NewsHeaders...)
	}
}

// Table returns the active scope's filtered rows rendered as cells
func (s *Session) Table() (headers []string, records [][]string) {
	s.mu.Lock()
	scope := s.active
	rows := s.filteredLocked(scope)
	s.mu.Unlock()

	headers = s.Columns(scope)
	records = make([][]string, 0, len(rows))
	for _, r := range rows {
		record := make([]string, len(headers))
		for i, h := range headers {
			record[i] = domain.FormatCell(r.Value(h))
		}
		records = append(records, record)
	}
	return headers, records
}

// Export writes the active scope's filtered rows as CSV with a header row
func (s *Session) Export(w io.Writer) error {
	headers, records := s.Table()

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
