package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the outbound HTTP contract used by the search gateway and
// the remote API client. Implementations decide retry and pacing policy; tests
// substitute a recording fake.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Non-2xx statuses are not errors; they come back as a Response.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST of a JSON body to the specified URL.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Header names are case-insensitive.
	Header(key string) string
}
