package search

import (
	"context"
	"strings"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/extract"
)

// SearchPeople finds public profiles. Configuration and provider errors propagate.
func (s *Service) SearchPeople(ctx context.Context, q domain.PeopleQuery) (*domain.SearchResult[domain.PeopleRow], error) {
	query, limit, err := normalizeRequest(q.Query, q.Limit)
	if err != nil {
		return nil, err
	}
	hint := strings.TrimSpace(q.CompanyHint)
	built := buildPeopleQuery(query, hint)

	key := cacheKey(domain.ScopePeople, limit, built)
	if cached, ok := cachedResult[domain.PeopleRow](ctx, s, key); ok {
		s.logCompleted(domain.ScopePeople, cached.Meta, pageStats{}, true)
		return cached, nil
	}

	rows, stats, err := collect(ctx, s, built, limit, func(raw domain.RawSearchResult, _ int) (domain.PeopleRow, string, bool) {
		row := personRow(raw, hint)
		return row, row.ID, true
	})
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult[domain.PeopleRow]{
		Rows: nonNil(rows),
		Meta: domain.SearchMeta{Source: SourceGoogle, Requested: limit, Returned: len(rows)},
	}
	storeResult(ctx, s, key, result)
	s.logCompleted(domain.ScopePeople, result.Meta, stats, false)
	return result, nil
}

func personRow(raw domain.RawSearchResult, companyHint string) domain.PeopleRow {
	profile := extract.NormalizeURL(raw.Link)
	title := extract.CleanText(raw.Title)
	person := extract.ParsePersonTitle(title)

	row := domain.PeopleRow{
		ID:           extract.StableID(profile),
		PersonName:   person.Name,
		Role:         person.Role,
		Company:      person.Company,
		ProfileURL:   profile,
		Source:       SourceGoogle,
		ResultType:   "person",
		MatchStatus:  domain.MatchStatusNeutral,
		Significance: domain.DefaultScore,
		Relevance:    domain.DefaultScore,
	}
	if companyHint != "" {
		row.Tags = strings.Join(extract.MatchedKeywords([]string{companyHint}, title, extract.CleanText(raw.Snippet)), ", ")
	}
	if d, ok := extract.MetatagDate(raw); ok {
		row.Date = d
	}
	return row
}
