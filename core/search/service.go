// ABOUTME: Search service runs the scoped pipelines: validate, query, page, normalize, dedup
// ABOUTME: Provides business logic for searches independent of the HTTP layer and CLI

package search

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/gateway"
	"leadsearch-api/core/interfaces"
	"leadsearch-api/pkg/featureflags"
)

// SourceGoogle labels rows that came from the provider
const SourceGoogle = "Google"

// Options tunes the page loop and caching
type Options struct {
	// MaxPages and MaxRaw bound the provider calls per request
	MaxPages int
	MaxRaw   int

	// CacheTTL is how long responses stay cached
	CacheTTL time.Duration

	// NewsQuerySuffix is appended to news queries
	NewsQuerySuffix string

	// Now is the clock used for derived dates
	Now func() time.Time
}

// Service runs searches against the injected provider
type Service struct {
	deps  interfaces.Dependencies
	flags featureflags.Manager
	opts  Options
}

var _ interfaces.Searcher = (*Service)(nil)

// NewService creates a search service. A nil flags manager uses the defaults.
func NewService(deps interfaces.Dependencies, flags featureflags.Manager, opts Options) *Service {
	if flags == nil {
		flags = featureflags.NewDefaultManager()
	}
	if opts.MaxPages < 1 {
		opts.MaxPages = 3
	}
	if opts.MaxRaw < 1 {
		opts.MaxRaw = 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		deps:  deps,
		flags: flags,
		opts:  opts,
	}
}

// mapper turns one raw result into a row plus its dedup key. position is the
// result's 1-based index across pages. ok=false drops the item.
type mapper[T any] func(raw domain.RawSearchResult, position int) (row T, key string, ok bool)

// pageStats describes what a collect call did
type pageStats struct {
	pages int
	raw   int
}

// collect pages through the provider until limit distinct rows are found, a
// page comes back short, or the page/raw ceiling is reached. Rows gathered
// before an error are returned alongside it.
func collect[T any](ctx context.Context, s *Service, query string, limit int, toRow mapper[T]) ([]T, pageStats, error) {
	var rows []T
	seen := make(map[string]struct{})

	limits := gateway.Limits{MaxPages: s.opts.MaxPages, MaxRaw: s.opts.MaxRaw}
	pages, raw, err := gateway.Paginate(ctx, s.deps.Provider, query, limits, func(items []domain.RawSearchResult, start int) bool {
		for i, item := range items {
			if item.Link == "" {
				continue
			}
			row, key, ok := toRow(item, start+i)
			if !ok {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			rows = append(rows, row)
			if len(rows) >= limit {
				return true
			}
		}
		return false
	})

	return rows, pageStats{pages: pages, raw: raw}, err
}

// cachedResult returns a previously stored response for key
func cachedResult[T any](ctx context.Context, s *Service, key string) (*domain.SearchResult[T], bool) {
	if s.deps.Cache == nil || !s.flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.deps.Logger.Warn("Cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var result domain.SearchResult[T]
	if err := json.Unmarshal(data, &result); err != nil {
		s.deps.Logger.Warn("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}
	for _, row := range result.Rows {
		v, ok := any(row).(validator)
		if !ok {
			break
		}
		if err := v.Validate(); err != nil {
			s.deps.Logger.Warn("Discarding invalid cache entry", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			return nil, false
		}
	}
	return &result, true
}

// validator is implemented by rows that carry caller-defined fields
type validator interface {
	Validate() error
}

// storeResult caches a successful response
func storeResult[T any](ctx context.Context, s *Service, key string, result *domain.SearchResult[T]) {
	if s.deps.Cache == nil || !s.flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
		s.deps.Logger.Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *Service) logCompleted(scope domain.Scope, meta domain.SearchMeta, stats pageStats, cached bool) {
	s.deps.Logger.Info("Search completed", map[string]interface{}{
		"scope":     string(scope),
		"source":    meta.Source,
		"requested": meta.Requested,
		"returned":  meta.Returned,
		"pages":     stats.pages,
		"raw":       stats.raw,
		"cached":    cached,
	})
}
