// ABOUTME: Google Custom Search gateway returning raw, unnormalized result pages
// ABOUTME: Owns credentials, pacing, per-call timeouts and provider error mapping

package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"leadsearch-api/core/domain"
	apperrors "leadsearch-api/core/errors"
	"leadsearch-api/core/interfaces"
)

const (
	// ProviderName labels errors and logs
	ProviderName = "Google CSE"

	// PageSize is the most results the provider returns per call
	PageSize = 10

	// MaxCount is the largest count Search accepts
	MaxCount = 50

	// maxBodyBytes caps how much of a provider response is read
	maxBodyBytes = 4 << 20
)

// Config holds provider credentials and limits
type Config struct {
	Endpoint string
	APIKey   string
	EngineID string

	// Timeout bounds each provider call, including time spent waiting on the limiter
	Timeout time.Duration

	// QPS and Burst pace outbound calls across all requests
	QPS   float64
	Burst int

	// MaxPages and MaxRaw bound Search
	MaxPages int
	MaxRaw   int
}

// Google fetches result pages from the Custom Search JSON API
type Google struct {
	cfg     Config
	client  interfaces.HTTPClient
	limiter *rate.Limiter
	logger  interfaces.Logger
}

// NewGoogle creates a gateway. Zero limits fall back to 10s, 1 qps burst 3, 3 pages and 30 results.
func NewGoogle(cfg Config, client interfaces.HTTPClient, logger interfaces.Logger) *Google {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.QPS <= 0 {
		cfg.QPS = 1
	}
	if cfg.Burst < 1 {
		cfg.Burst = 3
	}
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 3
	}
	if cfg.MaxRaw < 1 {
		cfg.MaxRaw = 30
	}

	return &Google{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.QPS), cfg.Burst),
		logger:  logger,
	}
}

// Configured reports whether both credentials are present
func (g *Google) Configured() bool {
	return g.cfg.APIKey != "" && g.cfg.EngineID != ""
}

// FetchPage performs one provider call. start is the 1-based index of the first
// result; num is clamped to 1..10.
func (g *Google) FetchPage(ctx context.Context, query string, start, num int) ([]domain.RawSearchResult, error) {
	if !g.Configured() {
		return nil, &apperrors.ConfigurationError{Missing: []string{"GOOGLE_API_KEY", "GOOGLE_CSE_ID"}}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	if err := g.limiter.Wait(callCtx); err != nil {
		return nil, g.transportError(ctx, err)
	}

	reqURL := g.pageURL(query, start, clamp(num, 1, PageSize))
	resp, err := g.client.Get(callCtx, reqURL)
	if err != nil {
		return nil, g.transportError(ctx, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return nil, g.transportError(ctx, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		g.logger.Warn("Search provider returned an error", map[string]interface{}{
			"status": resp.StatusCode(),
			"start":  start,
		})
		return nil, &apperrors.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode(),
			Body:       string(body),
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &apperrors.ProviderError{
			Provider:   ProviderName,
			StatusCode: 502,
			Body:       "response is not valid JSON",
		}
	}

	return parseItems(body), nil
}

// Search collects up to count raw results by paging sequentially. Paging stops
// when count is reached, a page comes back short, or the page/result ceiling is hit.
func (g *Google) Search(ctx context.Context, query string, count int) ([]domain.RawSearchResult, error) {
	count = clamp(count, 1, MaxCount)
	target := min(count, g.cfg.MaxRaw)

	var results []domain.RawSearchResult
	_, _, err := Paginate(ctx, g, query, Limits{MaxPages: g.cfg.MaxPages, MaxRaw: target}, func(items []domain.RawSearchResult, _ int) bool {
		results = append(results, items...)
		return false
	})
	if err != nil {
		return nil, err
	}

	if len(results) > target {
		results = results[:target]
	}
	return results, nil
}

func (g *Google) pageURL(query string, start, num int) string {
	params := url.Values{}
	params.Set("key", g.cfg.APIKey)
	params.Set("cx", g.cfg.EngineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))
	if start > 1 {
		params.Set("start", strconv.Itoa(start))
	}
	return g.cfg.Endpoint + "?" + params.Encode()
}

// transportError maps a failed call: caller cancellation passes through,
// timeouts become 504 and anything else 502.
func (g *Google) transportError(parent context.Context, err error) error {
	if parent.Err() != nil && errors.Is(parent.Err(), context.Canceled) {
		return parent.Err()
	}

	status := 502
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		status = 504
	}

	g.logger.Error("Search provider request failed", map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	})

	return &apperrors.ProviderError{
		Provider:   ProviderName,
		StatusCode: status,
		Body:       fmt.Sprintf("request failed: %v", err),
	}
}

// parseItems maps the provider's items array. The first pagemap.metatags entry
// carries the publish-date hints.
func parseItems(body []byte) []domain.RawSearchResult {
	items := gjson.GetBytes(body, "items").Array()
	results := make([]domain.RawSearchResult, 0, len(items))
	for _, item := range items {
		r := domain.RawSearchResult{
			Title:       item.Get("title").String(),
			Link:        item.Get("link").String(),
			Snippet:     item.Get("snippet").String(),
			DisplayLink: item.Get("displayLink").String(),
		}
		if tags := item.Get("pagemap.metatags.0"); tags.IsObject() {
			r.Metatags = make(map[string]string)
			tags.ForEach(func(key, value gjson.Result) bool {
				r.Metatags[key.String()] = value.String()
				return true
			})
		}
		results = append(results, r)
	}
	return results
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
