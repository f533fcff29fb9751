package handlers

import (
	"context"
	"fmt"
	"io"
	"sync"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/interfaces"
)

// stubSearcher returns canned results and records the queries it received
type stubSearcher struct {
	companies *domain.SearchResult[domain.CompanyRow]
	people    *domain.SearchResult[domain.PeopleRow]
	news      *domain.SearchResult[domain.NewsRow]
	err       error

	lastCompany domain.CompanyQuery
	lastPeople  domain.PeopleQuery
}

func (s *stubSearcher) SearchCompanies(ctx context.Context, q domain.CompanyQuery) (*domain.SearchResult[domain.CompanyRow], error) {
	s.lastCompany = q
	return s.companies, s.err
}

func (s *stubSearcher) SearchPeople(ctx context.Context, q domain.PeopleQuery) (*domain.SearchResult[domain.PeopleRow], error) {
	s.lastPeople = q
	return s.people, s.err
}

func (s *stubSearcher) SearchNews(ctx context.Context, q domain.NewsQuery) (*domain.SearchResult[domain.NewsRow], error) {
	return s.news, s.err
}

// countingHTTPClient fails every call and counts them
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

func (c *countingHTTPClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
