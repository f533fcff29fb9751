// ABOUTME: Search interfaces shared by the pipeline, the HTTP handlers and the CLI
// ABOUTME: Lets callers swap the in-process service for the remote API client

package interfaces

import (
	"context"

	"leadsearch-api/core/domain"
)

// PageFetcher retrieves one page of raw provider results.
// start is 1-based; num is clamped to the provider's page size.
type PageFetcher interface {
	FetchPage(ctx context.Context, query string, start, num int) ([]domain.RawSearchResult, error)

	// Configured reports whether provider credentials are present
	Configured() bool
}

// NewsGenerator synthesizes news rows when real results run short
type NewsGenerator interface {
	Generate(query string, count, offset int) []domain.NewsRow
}

// Searcher runs the three scoped searches
type Searcher interface {
	SearchCompanies(ctx context.Context, q domain.CompanyQuery) (*domain.SearchResult[domain.CompanyRow], error)
	SearchPeople(ctx context.Context, q domain.PeopleQuery) (*domain.SearchResult[domain.PeopleRow], error)
	SearchNews(ctx context.Context, q domain.NewsQuery) (*domain.SearchResult[domain.NewsRow], error)
}
