// ABOUTME: Retrying HTTP client built on hashicorp/go-retryablehttp
// ABOUTME: Retries 5xx and transport errors, then hands the last response back untouched

package retryable

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"leadsearch-api/core/interfaces"
)

const userAgent = "LeadSearchAPI/1.0"

// Config holds the retry policy
type Config struct {
	// Timeout bounds a single attempt; zero means no client-side limit
	Timeout time.Duration

	// RetryMax is the number of retries after the first attempt
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the backoff between attempts
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives retry diagnostics; nil silences them
	Logger retryablehttp.LeveledLogger
}

// DefaultConfig returns the policy used by the server
func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		RetryMax:     2,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}
}

// Client implements interfaces.HTTPClient on top of a retryablehttp.Client
type Client struct {
	client *retryablehttp.Client
}

// NewClient creates a retrying HTTP client
func NewClient(cfg Config) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	// Callers need the provider's status and body, not retryablehttp's "giving up" error
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = cfg.Logger

	return &Client{client: rc}
}

// Get performs an HTTP GET request
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// Post performs an HTTP POST request with a JSON body
func (c *Client) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *retryablehttp.Request) (interfaces.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
