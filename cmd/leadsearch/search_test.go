package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/session"
)

type stubSearcher struct {
	newsErr error
}

func (s *stubSearcher) SearchCompanies(ctx context.Context, q domain.CompanyQuery) (*domain.SearchResult[domain.CompanyRow], error) {
	rows := []domain.CompanyRow{
		{ID: "a", CompanyName: "Acme", Source: "Google", Description: "Robots", Significance: 80, Relevance: 80},
		{ID: "b", CompanyName: "Globex", Source: "Google", Description: "Widgets", Significance: 20, Relevance: 20},
	}
	return &domain.SearchResult[domain.CompanyRow]{Rows: rows, Meta: domain.SearchMeta{Source: "Google", Requested: 25, Returned: 2}}, nil
}

func (s *stubSearcher) SearchPeople(ctx context.Context, q domain.PeopleQuery) (*domain.SearchResult[domain.PeopleRow], error) {
	rows := []domain.PeopleRow{{ID: "p", PersonName: "Jane Doe", Role: "CTO", Company: "Acme", Source: "LinkedIn", Significance: 50, Relevance: 50}}
	return &domain.SearchResult[domain.PeopleRow]{Rows: rows, Meta: domain.SearchMeta{Source: "Google", Returned: 1}}, nil
}

func (s *stubSearcher) SearchNews(ctx context.Context, q domain.NewsQuery) (*domain.SearchResult[domain.NewsRow], error) {
	if s.newsErr != nil {
		return nil, s.newsErr
	}
	rows := []domain.NewsRow{{ID: "n", Title: "Acme raises", Source: "TechCrunch", Significance: 2.5, Relevance: 2.5}}
	return &domain.SearchResult[domain.NewsRow]{Rows: rows, Meta: domain.SearchMeta{Source: "Google", Returned: 1}}, nil
}

func TestParseScopes(t *testing.T) {
	scopes, err := parseScopes("all")
	require.NoError(t, err)
	assert.Equal(t, domain.Scopes, scopes)

	scopes, err = parseScopes("company")
	require.NoError(t, err)
	assert.Equal(t, []domain.Scope{domain.ScopeCompanies}, scopes)

	_, err = parseScopes("jobs")
	assert.Error(t, err)
}

func TestRunSearch_FiltersAndPrints(t *testing.T) {
	var out bytes.Buffer
	opts := searchOptions{
		Query:  "robotics",
		Scopes: []domain.Scope{domain.ScopeCompanies},
		Filter: session.Filter{Match: domain.MatchAll, SignificanceMin: 50},
	}

	require.NoError(t, runSearch(context.Background(), &stubSearcher{}, opts, &out))

	text := out.String()
	assert.Contains(t, text, "== companies ==")
	assert.Contains(t, text, "Acme")
	assert.NotContains(t, text, "Globex")
	assert.Contains(t, text, "1 of 2 rows shown (source: Google)")
}

func TestRunSearch_AllScopesExportPerScope(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	opts := searchOptions{
		Query:  "acme",
		Scopes: domain.Scopes,
		Out:    filepath.Join(dir, "leads.csv"),
	}

	require.NoError(t, runSearch(context.Background(), &stubSearcher{}, opts, &out))

	people, err := os.ReadFile(filepath.Join(dir, "leads-people.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Person,Source,Date,Match,Significance,Relevance,Summary\nJane Doe,LinkedIn,,Neutral,50,50,CTO at Acme\n", string(people))

	for _, name := range []string{"leads-news.csv", "leads-companies.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunSearch_OneScopeFailing(t *testing.T) {
	var out bytes.Buffer
	opts := searchOptions{Query: "acme", Scopes: domain.Scopes}

	err := runSearch(context.Background(), &stubSearcher{newsErr: errors.New("provider down")}, opts, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error: provider down")
	assert.Contains(t, out.String(), "Jane Doe")
}

func TestRunSearch_AllFailing(t *testing.T) {
	var out bytes.Buffer
	opts := searchOptions{Query: "acme", Scopes: []domain.Scope{domain.ScopeNews}}

	err := runSearch(context.Background(), &stubSearcher{newsErr: errors.New("provider down")}, opts, &out)
	assert.EqualError(t, err, "all 1 searches failed")
}

func TestRunSearch_EmptyQuery(t *testing.T) {
	err := runSearch(context.Background(), &stubSearcher{}, searchOptions{Query: "  ", Scopes: domain.Scopes}, &bytes.Buffer{})
	assert.ErrorIs(t, err, session.ErrEmptyQuery)
}

func TestExportPath(t *testing.T) {
	assert.Equal(t, "out.csv", exportPath("out.csv", domain.ScopeNews, false))
	assert.Equal(t, "dir/out-news.csv", exportPath("dir/out.csv", domain.ScopeNews, true))
	assert.Equal(t, "out-people", exportPath("out", domain.ScopePeople, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a b", truncate("a \n b", 10))
	long := strings.Repeat("x", 70)
	got := truncate(long, 60)
	assert.Len(t, []rune(got), 60)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFallbackCommand(t *testing.T) {
	var out bytes.Buffer
	fallbackCmd.SetOut(&out)
	require.NoError(t, fallbackCmd.Flags().Set("count", "3"))
	t.Cleanup(func() { _ = fallbackCmd.Flags().Set("count", "10") })

	require.NoError(t, fallbackCmd.RunE(fallbackCmd, []string{"klarna"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Title"))
}
