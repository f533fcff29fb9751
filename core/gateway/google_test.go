package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "leadsearch-api/core/errors"
	"leadsearch-api/core/interfaces"
)

func testConfig() Config {
	return Config{
		Endpoint: "https://search.test/customsearch/v1",
		APIKey:   "test-key",
		EngineID: "test-cx",
		Timeout:  time.Second,
		QPS:      1000,
		Burst:    100,
		MaxPages: 3,
		MaxRaw:   30,
	}
}

// pageBody renders n provider items whose links are numbered from start
func pageBody(start, n int) string {
	items := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]interface{}{
			"title":       fmt.Sprintf("Result %d", start+i),
			"link":        fmt.Sprintf("https://example.com/%d", start+i),
			"snippet":     "snippet",
			"displayLink": "example.com",
		})
	}
	b, _ := json.Marshal(map[string]interface{}{"items": items})
	return string(b)
}

// pagedProvider serves total results in pages honoring start and num
func pagedProvider(total int) func(ctx context.Context, raw string) (interfaces.Response, error) {
	return func(ctx context.Context, raw string) (interfaces.Response, error) {
		u, _ := url.Parse(raw)
		start := 1
		if s := u.Query().Get("start"); s != "" {
			start, _ = strconv.Atoi(s)
		}
		num, _ := strconv.Atoi(u.Query().Get("num"))
		n := min(num, total-start+1)
		if n < 0 {
			n = 0
		}
		return &mockResponse{statusCode: 200, body: pageBody(start, n)}, nil
	}
}

func TestFetchPage_MissingCredentials(t *testing.T) {
	client := &mockHTTPClient{}
	cfg := testConfig()
	cfg.APIKey = ""

	g := NewGoogle(cfg, client, &mockLogger{})
	_, err := g.FetchPage(context.Background(), "acme", 1, 10)

	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	assert.Contains(t, err.Error(), "GOOGLE_CSE_ID")
	assert.Empty(t, client.calls(), "no outbound call without credentials")
	assert.False(t, g.Configured())
}

func TestFetchPage_QueryParameters(t *testing.T) {
	client := &mockHTTPClient{}
	g := NewGoogle(testConfig(), client, &mockLogger{})
	ctx := context.Background()

	_, err := g.FetchPage(ctx, "acme robotics", 1, 25)
	require.NoError(t, err)
	_, err = g.FetchPage(ctx, "acme robotics", 11, 0)
	require.NoError(t, err)

	calls := client.calls()
	require.Len(t, calls, 2)

	first, _ := url.Parse(calls[0])
	assert.Equal(t, "search.test", first.Host)
	assert.Equal(t, "test-key", first.Query().Get("key"))
	assert.Equal(t, "test-cx", first.Query().Get("cx"))
	assert.Equal(t, "acme robotics", first.Query().Get("q"))
	assert.Equal(t, "10", first.Query().Get("num"), "num clamped to page size")
	assert.False(t, first.Query().Has("start"), "start omitted on the first page")

	second, _ := url.Parse(calls[1])
	assert.Equal(t, "1", second.Query().Get("num"), "num clamped to at least one")
	assert.Equal(t, "11", second.Query().Get("start"))
}

func TestFetchPage_ParsesItems(t *testing.T) {
	body := `{"items":[
		{"title":"Acme | Home","link":"https://acme.com/","snippet":"Founded in 2015","displayLink":"www.acme.com",
		 "pagemap":{"metatags":[{"og:published_time":"2024-03-05T10:00:00Z","og:title":"Acme"},{"ignored":"x"}]}},
		{"title":"No tags","link":"https://globex.com/"}
	]}`
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: 200, body: body}, nil
	}}

	items, err := NewGoogle(testConfig(), client, &mockLogger{}).FetchPage(context.Background(), "acme", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Acme | Home", items[0].Title)
	assert.Equal(t, "https://acme.com/", items[0].Link)
	assert.Equal(t, "Founded in 2015", items[0].Snippet)
	assert.Equal(t, "www.acme.com", items[0].DisplayLink)
	assert.Equal(t, "2024-03-05T10:00:00Z", items[0].Metatags["og:published_time"])
	assert.NotContains(t, items[0].Metatags, "ignored")
	assert.Nil(t, items[1].Metatags)
}

func TestFetchPage_NoItems(t *testing.T) {
	client := &mockHTTPClient{}
	items, err := NewGoogle(testConfig(), client, &mockLogger{}).FetchPage(context.Background(), "zzz", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchPage_ProviderStatus(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: 403, body: `{"error":{"message":"Daily limit exceeded"}}`}, nil
	}}

	_, err := NewGoogle(testConfig(), client, &mockLogger{}).FetchPage(context.Background(), "acme", 1, 10)

	providerErr, ok := apperrors.AsProvider(err)
	require.True(t, ok)
	assert.Equal(t, 403, providerErr.StatusCode)
	assert.Contains(t, providerErr.Body, "Daily limit exceeded")
}

func TestFetchPage_InvalidJSON(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: 200, body: `<html>oops</html>`}, nil
	}}

	_, err := NewGoogle(testConfig(), client, &mockLogger{}).FetchPage(context.Background(), "acme", 1, 10)

	providerErr, ok := apperrors.AsProvider(err)
	require.True(t, ok)
	assert.Equal(t, 502, providerErr.StatusCode)
}

func TestFetchPage_TransportFailure(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return nil, errors.New("connection refused")
	}}

	_, err := NewGoogle(testConfig(), client, &mockLogger{}).FetchPage(context.Background(), "acme", 1, 10)

	providerErr, ok := apperrors.AsProvider(err)
	require.True(t, ok)
	assert.Equal(t, 502, providerErr.StatusCode)
	assert.Contains(t, providerErr.Body, "connection refused")
}

func TestFetchPage_Timeout(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond

	_, err := NewGoogle(cfg, client, &mockLogger{}).FetchPage(context.Background(), "acme", 1, 10)

	providerErr, ok := apperrors.AsProvider(err)
	require.True(t, ok)
	assert.Equal(t, 504, providerErr.StatusCode)
}

func TestFetchPage_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &mockHTTPClient{getFunc: func(c context.Context, url string) (interfaces.Response, error) {
		cancel()
		<-c.Done()
		return nil, c.Err()
	}}

	_, err := NewGoogle(testConfig(), client, &mockLogger{}).FetchPage(ctx, "acme", 1, 10)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperrors.IsProvider(err))
}

func TestSearch_Paging(t *testing.T) {
	tests := []struct {
		name      string
		available int
		count     int
		wantCalls int
		wantItems int
	}{
		{"single short request", 100, 5, 1, 5},
		{"exact pages", 100, 20, 2, 20},
		{"ceiling of three pages", 100, 50, 3, 30},
		{"short page stops paging", 14, 50, 2, 14},
		{"empty provider", 0, 25, 1, 0},
		{"count clamped up to one", 100, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockHTTPClient{getFunc: pagedProvider(tt.available)}
			g := NewGoogle(testConfig(), client, &mockLogger{})

			items, err := g.Search(context.Background(), "acme", tt.count)
			require.NoError(t, err)
			assert.Len(t, items, tt.wantItems)
			assert.Len(t, client.calls(), tt.wantCalls)
		})
	}
}

func TestSearch_AdvancesStart(t *testing.T) {
	client := &mockHTTPClient{getFunc: pagedProvider(100)}
	items, err := NewGoogle(testConfig(), client, &mockLogger{}).Search(context.Background(), "acme", 25)
	require.NoError(t, err)
	require.Len(t, items, 25)

	starts := []string{}
	for _, raw := range client.calls() {
		u, _ := url.Parse(raw)
		starts = append(starts, u.Query().Get("start")+"/"+u.Query().Get("num"))
	}
	assert.Equal(t, []string{"/10", "11/10", "21/5"}, starts)
	assert.Equal(t, "https://example.com/25", items[24].Link)
}

func TestSearch_PropagatesErrors(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{getFunc: func(ctx context.Context, raw string) (interfaces.Response, error) {
		calls++
		if calls == 2 {
			return &mockResponse{statusCode: 500, body: "backend error"}, nil
		}
		return pagedProvider(100)(ctx, raw)
	}}

	_, err := NewGoogle(testConfig(), client, &mockLogger{}).Search(context.Background(), "acme", 30)
	assert.True(t, apperrors.IsProvider(err))
}
