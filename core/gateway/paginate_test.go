package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadsearch-api/core/domain"
)

// pageFetcher serves total numbered results and records each call as start/num
type pageFetcher struct {
	total  int
	failAt int
	calls  []string
}

func (f *pageFetcher) FetchPage(ctx context.Context, query string, start, num int) ([]domain.RawSearchResult, error) {
	f.calls = append(f.calls, fmt.Sprintf("%d/%d", start, num))
	if f.failAt == len(f.calls) {
		return nil, errors.New("page failed")
	}
	var items []domain.RawSearchResult
	for i := start; i < start+num && i <= f.total; i++ {
		items = append(items, domain.RawSearchResult{Link: fmt.Sprintf("https://example.com/%d", i)})
	}
	return items, nil
}

func (f *pageFetcher) Configured() bool { return true }

func TestPaginate_VisitorStopsEarly(t *testing.T) {
	f := &pageFetcher{total: 100}
	var starts []int

	pages, raw, err := Paginate(context.Background(), f, "acme", Limits{MaxPages: 3, MaxRaw: 30}, func(items []domain.RawSearchResult, start int) bool {
		starts = append(starts, start)
		return start > 1
	})

	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Equal(t, 20, raw)
	assert.Equal(t, []int{1, 11}, starts)
}

func TestPaginate_Ceilings(t *testing.T) {
	f := &pageFetcher{total: 100}
	pages, raw, err := Paginate(context.Background(), f, "acme", Limits{MaxPages: 5, MaxRaw: 25}, func([]domain.RawSearchResult, int) bool { return false })

	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	assert.Equal(t, 25, raw)
	assert.Equal(t, []string{"1/10", "11/10", "21/5"}, f.calls)
}

func TestPaginate_ShortPageStops(t *testing.T) {
	f := &pageFetcher{total: 12}
	pages, raw, err := Paginate(context.Background(), f, "acme", Limits{MaxPages: 3, MaxRaw: 30}, func([]domain.RawSearchResult, int) bool { return false })

	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Equal(t, 12, raw)
}

func TestPaginate_ErrorKeepsVisitedPages(t *testing.T) {
	f := &pageFetcher{total: 100, failAt: 2}
	visited := 0

	pages, _, err := Paginate(context.Background(), f, "acme", Limits{MaxPages: 3, MaxRaw: 30}, func(items []domain.RawSearchResult, _ int) bool {
		visited += len(items)
		return false
	})

	assert.EqualError(t, err, "page failed")
	assert.Equal(t, 1, pages)
	assert.Equal(t, 10, visited)
}
