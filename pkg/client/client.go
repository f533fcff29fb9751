// ABOUTME: HTTP client for a remote lead search API server
// ABOUTME: Implements the same Searcher contract as the in-process service

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"leadsearch-api/api/dto/mappers"
	"leadsearch-api/api/dto/requests"
	"leadsearch-api/api/dto/responses"
	"leadsearch-api/core/domain"
	"leadsearch-api/core/interfaces"
)

// maxResponseBytes bounds how much of a response body is read
const maxResponseBytes = 4 << 20

// APIError is a non-2xx answer from the server
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := fmt.Sprintf("search failed (%d): %s", e.StatusCode, e.Message)
	if len(e.Details) > 0 {
		msg += " [" + strings.Join(e.Details, "; ") + "]"
	}
	return msg
}

// Client talks to a lead search API server
type Client struct {
	baseURL string
	http    interfaces.HTTPClient
}

var _ interfaces.Searcher = (*Client)(nil)

// New creates a client for the server at baseURL, e.g. "http://localhost:8000"
func New(baseURL string, httpClient interfaces.HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SearchCompanies calls POST /search/companies
func (c *Client) SearchCompanies(ctx context.Context, q domain.CompanyQuery) (*domain.SearchResult[domain.CompanyRow], error) {
	var resp responses.CompanySearchResponse
	req := requests.CompanySearchRequest{Query: q.Query, Limit: q.Limit, Regions: q.Regions, Keywords: q.Keywords}
	if err := c.post(ctx, "/search/companies", req, &resp); err != nil {
		return nil, err
	}
	return mappers.FromCompanySearchResponse(resp), nil
}

// SearchPeople calls POST /search/people
func (c *Client) SearchPeople(ctx context.Context, q domain.PeopleQuery) (*domain.SearchResult[domain.PeopleRow], error) {
	var resp responses.PeopleSearchResponse
	req := requests.PeopleSearchRequest{Query: q.Query, Limit: q.Limit, CompanyHint: q.CompanyHint}
	if err := c.post(ctx, "/search/people", req, &resp); err != nil {
		return nil, err
	}
	return mappers.FromPeopleSearchResponse(resp), nil
}

// SearchNews calls POST /search/news
func (c *Client) SearchNews(ctx context.Context, q domain.NewsQuery) (*domain.SearchResult[domain.NewsRow], error) {
	var resp responses.NewsSearchResponse
	req := requests.NewsSearchRequest{Query: q.Query, Limit: q.Limit}
	if err := c.post(ctx, "/search/news", req, &resp); err != nil {
		return nil, err
	}
	return mappers.FromNewsSearchResponse(resp), nil
}

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (responses.HealthResponse, error) {
	var out responses.HealthResponse
	resp, err := c.http.Get(ctx, c.baseURL+"/health")
	if err != nil {
		return out, err
	}
	body, err := readBody(resp)
	if err != nil {
		return out, err
	}
	if resp.StatusCode() != 200 {
		return out, apiError(resp.StatusCode(), body)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode health response: %w", err)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	body, err := readBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return apiError(resp.StatusCode(), body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func readBody(resp interfaces.Response) ([]byte, error) {
	defer resp.Body().Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// apiError reads the {ok:false,error,details} envelope, tolerating other bodies
func apiError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		e.Message = parsed.Get("error").String()
		for _, d := range parsed.Get("details").Array() {
			e.Details = append(e.Details, d.String())
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	if e.Message == "" {
		e.Message = "no response body"
	}
	return e
}
