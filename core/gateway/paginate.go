package gateway

import (
	"context"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/interfaces"
)

// Limits bound one paged search
type Limits struct {
	MaxPages int
	MaxRaw   int
}

// PageFunc receives each page with the 1-based position of its first item.
// Returning true stops paging.
type PageFunc func(items []domain.RawSearchResult, start int) (stop bool)

// Paginate fetches pages sequentially from start=1 until visit asks to stop, a
// page comes back short, or a ceiling is hit. It reports the pages fetched and
// the raw items seen. Pages delivered before an error have already been visited.
func Paginate(ctx context.Context, fetcher interfaces.PageFetcher, query string, limits Limits, visit PageFunc) (pages, raw int, err error) {
	start := 1
	for pages < limits.MaxPages && raw < limits.MaxRaw {
		num := min(PageSize, limits.MaxRaw-raw)
		items, err := fetcher.FetchPage(ctx, query, start, num)
		if err != nil {
			return pages, raw, err
		}
		pages++
		raw += len(items)

		if visit(items, start) || len(items) < num {
			break
		}
		start += len(items)
	}
	return pages, raw, nil
}
