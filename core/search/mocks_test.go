package search

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"leadsearch-api/core/domain"
	apperrors "leadsearch-api/core/errors"
	"leadsearch-api/core/interfaces"
)

// fakeProvider is a PageFetcher serving scripted pages
type fakeProvider struct {
	mu         sync.Mutex
	configured bool
	queries    []string
	starts     []int
	page       func(start, num int) ([]domain.RawSearchResult, error)
}

func newFakeProvider(page func(start, num int) ([]domain.RawSearchResult, error)) *fakeProvider {
	return &fakeProvider{configured: true, page: page}
}

func (f *fakeProvider) FetchPage(ctx context.Context, query string, start, num int) ([]domain.RawSearchResult, error) {
	if !f.configured {
		return nil, &apperrors.ConfigurationError{Missing: []string{"GOOGLE_API_KEY", "GOOGLE_CSE_ID"}}
	}
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.starts = append(f.starts, start)
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.page(start, num)
}

func (f *fakeProvider) Configured() bool {
	return f.configured
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

// numbered serves total distinct results honoring start and num
func numbered(total int) func(start, num int) ([]domain.RawSearchResult, error) {
	return func(start, num int) ([]domain.RawSearchResult, error) {
		var items []domain.RawSearchResult
		for i := start; i < start+num && i <= total; i++ {
			items = append(items, domain.RawSearchResult{
				Title:       fmt.Sprintf("Company %d | Home", i),
				Link:        fmt.Sprintf("https://company%d.example.com/", i),
				Snippet:     fmt.Sprintf("Company %d builds things", i),
				DisplayLink: fmt.Sprintf("company%d.example.com", i),
			})
		}
		return items, nil
	}
}

// mockCache is an in-memory Cache recording writes
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mockCache) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// mockLogger records warnings
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) warnings() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.warns, "\n")
}

// countingHTTPClient counts outbound calls
type countingHTTPClient struct {
	mu    sync.Mutex
	count int
}

func (c *countingHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	return nil, fmt.Errorf("unexpected call to %s", url)
}

func (c *countingHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return c.Get(ctx, url)
}
