package search

import (
	"context"
	"errors"
	"time"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/extract"
	"leadsearch-api/core/fallback"
	"leadsearch-api/pkg/featureflags"
)

// Meta sources for news responses
const (
	SourceFallback       = fallback.SourceName
	SourceGoogleFallback = SourceGoogle + "+" + fallback.SourceName
)

// SearchNews finds news articles. When the provider is unconfigured, fails,
// or returns fewer rows than asked for, the result is topped up with
// synthesized rows; provider trouble is logged, never returned. Real rows
// always come first.
func (s *Service) SearchNews(ctx context.Context, q domain.NewsQuery) (*domain.SearchResult[domain.NewsRow], error) {
	query, limit, err := normalizeRequest(q.Query, q.Limit)
	if err != nil {
		return nil, err
	}
	built := buildNewsQuery(query, s.opts.NewsQuerySuffix)

	key := cacheKey(domain.ScopeNews, limit, built)
	if cached, ok := cachedResult[domain.NewsRow](ctx, s, key); ok {
		s.logCompleted(domain.ScopeNews, cached.Meta, pageStats{}, true)
		return cached, nil
	}

	now := s.opts.Now()
	rows, stats, err := collect(ctx, s, built, limit, func(raw domain.RawSearchResult, position int) (domain.NewsRow, string, bool) {
		row, ok := newsRow(raw, position, now)
		return row, row.ID, ok
	})

	useFallback := s.deps.Fallback != nil && s.flags.IsEnabled(ctx, featureflags.NewsFallback)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || !useFallback {
			return nil, err
		}
		s.deps.Logger.Warn("News provider unavailable, using fallback", map[string]interface{}{
			"query":  query,
			"kept":   len(rows),
			"reason": err.Error(),
		})
	}

	found := len(rows)
	if useFallback && len(rows) < limit {
		rows = mergeNews(rows, s.deps.Fallback.Generate(query, limit-len(rows), len(rows)), limit)
	}

	result := &domain.SearchResult[domain.NewsRow]{
		Rows: nonNil(rows),
		Meta: domain.SearchMeta{Source: newsSource(found, len(rows)), Requested: limit, Returned: len(rows)},
	}
	if err == nil {
		storeResult(ctx, s, key, result)
	}
	s.logCompleted(domain.ScopeNews, result.Meta, stats, false)
	return result, nil
}

// newsRow maps a provider item. Items without a title are dropped; the
// fallback date is position days before now.
func newsRow(raw domain.RawSearchResult, position int, now time.Time) (domain.NewsRow, bool) {
	title := extract.CleanText(raw.Title)
	if title == "" || raw.Link == "" {
		return domain.NewsRow{}, false
	}

	return domain.NewsRow{
		ID:           extract.StableID(raw.Link),
		Title:        title,
		URL:          raw.Link,
		Source:       extract.NewsSource(raw),
		Date:         extract.PublishedDate(raw, now.AddDate(0, 0, -position)),
		Summary:      extract.CleanText(raw.Snippet),
		Company:      extract.NewsCompany(title),
		MatchStatus:  domain.MatchStatusNeutral,
		Significance: domain.DefaultNewsScore,
		Relevance:    domain.DefaultNewsScore,
	}, true
}

// mergeNews appends extra rows whose id is not already present. Ids derive
// from the dedup key, so URLs differing only by fragment or trailing slash collide.
func mergeNews(rows, extra []domain.NewsRow, limit int) []domain.NewsRow {
	seen := make(map[string]struct{}, len(rows)+len(extra))
	for _, r := range rows {
		seen[r.ID] = struct{}{}
	}
	for _, r := range extra {
		if len(rows) >= limit {
			break
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		rows = append(rows, r)
	}
	return rows
}

func newsSource(found, total int) string {
	switch {
	case found == 0 && total > 0:
		return SourceFallback
	case total > found:
		return SourceGoogleFallback
	default:
		return SourceGoogle
	}
}
