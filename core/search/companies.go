package search

import (
	"context"
	"strings"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/extract"
	"leadsearch-api/pkg/featureflags"
)

// SearchCompanies finds company websites. Configuration and provider errors propagate.
func (s *Service) SearchCompanies(ctx context.Context, q domain.CompanyQuery) (*domain.SearchResult[domain.CompanyRow], error) {
	query, limit, err := normalizeRequest(q.Query, q.Limit)
	if err != nil {
		return nil, err
	}
	keywords := cleanList(q.Keywords)
	built := buildCompanyQuery(query, keywords, cleanList(q.Regions))

	key := cacheKey(domain.ScopeCompanies, limit, built)
	if cached, ok := cachedResult[domain.CompanyRow](ctx, s, key); ok {
		s.logCompleted(domain.ScopeCompanies, cached.Meta, pageStats{}, true)
		return cached, nil
	}

	enrich := s.flags.IsEnabled(ctx, featureflags.CompanyEnrichment)
	rows, stats, err := collect(ctx, s, built, limit, func(raw domain.RawSearchResult, _ int) (domain.CompanyRow, string, bool) {
		row := companyRow(raw, query, keywords, enrich)
		return row, row.ID, true
	})
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult[domain.CompanyRow]{
		Rows: nonNil(rows),
		Meta: domain.SearchMeta{Source: SourceGoogle, Requested: limit, Returned: len(rows)},
	}
	storeResult(ctx, s, key, result)
	s.logCompleted(domain.ScopeCompanies, result.Meta, stats, false)
	return result, nil
}

func companyRow(raw domain.RawSearchResult, query string, keywords []string, enrich bool) domain.CompanyRow {
	website := extract.NormalizeURL(raw.Link)
	title := extract.CleanText(raw.Title)
	snippet := extract.CleanText(raw.Snippet)

	row := domain.CompanyRow{
		ID:           extract.StableID(website),
		CompanyName:  extract.CompanyName(domain.RawSearchResult{Title: title, DisplayLink: raw.DisplayLink}),
		Website:      website,
		Description:  snippet,
		Source:       SourceGoogle,
		ResultType:   "company",
		MatchStatus:  domain.MatchStatusNeutral,
		Significance: domain.DefaultScore,
		Relevance:    domain.DefaultScore,
		Tags:         strings.Join(extract.MatchedKeywords(keywords, title, snippet), ", "),
	}
	if d, ok := extract.RegistrableDomain(raw.Link); ok {
		row.Domain = d
	}
	if d, ok := extract.MetatagDate(raw); ok {
		row.Date = d
	}

	if enrich {
		row.Employees, _ = extract.EmployeeCount(snippet)
		row.Funding, _ = extract.Funding(snippet)
		row.Location, _ = extract.Location(snippet)
		row.Industry, _ = extract.Industry(snippet, query)
		row.Founded, _ = extract.FoundedYear(snippet)
		row.RegionFocus = row.Location
		row.Segment = row.Industry
	}
	return row
}

// nonNil keeps empty results serializing as [] rather than null
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
