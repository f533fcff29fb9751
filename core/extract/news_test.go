package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leadsearch-api/core/domain"
)

func TestNewsCompany(t *testing.T) {
	assert.Equal(t, "Klarna", NewsCompany("Klarna - expands BNPL in Europe"))
	assert.Equal(t, "Revolut: new credit card launch", NewsCompany("Revolut: new credit card launch"), "no \" - \" means the whole title is the prefix")
	assert.Equal(t, "Monzo", NewsCompany("Monzo: a very long story about app banking growth - Reuters"))
	assert.Equal(t, "Klarna expands into new markets", NewsCompany("Klarna expands into new markets"))
	assert.Equal(t, "Klarna expands into", NewsCompany("Klarna expands into new markets across Europe and Asia today"))
	assert.Equal(t, "A very long", NewsCompany("A very long headline prefix that clearly runs past forty characters - Reuters"))
}

func TestNewsCompany_CountsUTF16Units(t *testing.T) {
	// 26 characters, 50 bytes
	cyrillic := "Сбербанк Технологии России"
	assert.Equal(t, cyrillic, NewsCompany(cyrillic+" - отчёт за квартал"))

	// 21 emoji are 42 UTF-16 units
	emoji := strings.Repeat("\U0001F680", 21)
	assert.NotEqual(t, emoji, NewsCompany(emoji+" - launch"))
}

func TestNewsSource(t *testing.T) {
	assert.Equal(t, "reuters.com", NewsSource(domain.RawSearchResult{DisplayLink: "reuters.com", Link: "https://bloomberg.com/x"}))
	assert.Equal(t, "bloomberg.com", NewsSource(domain.RawSearchResult{Link: "https://www.bloomberg.com/x"}))
	assert.Equal(t, "News", NewsSource(domain.RawSearchResult{}))
}

func TestPublishedDate(t *testing.T) {
	fallback := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	withTags := domain.RawSearchResult{Metatags: map[string]string{
		"date":                   "2023-12-01",
		"article:published_time": "2024-03-05T10:00:00Z",
	}}
	assert.Equal(t, "2024-03-05", PublishedDate(withTags, fallback), "article:published_time has priority")

	unparseable := domain.RawSearchResult{Metatags: map[string]string{"pubdate": "yesterday"}}
	assert.Equal(t, "2024-01-02", PublishedDate(unparseable, fallback))

	assert.Equal(t, "2024-01-02", PublishedDate(domain.RawSearchResult{}, fallback))

	firstTagBroken := domain.RawSearchResult{Metatags: map[string]string{
		"og:updated_time": "not a date",
		"pubdate":         "2023-07-08",
	}}
	assert.Equal(t, "2024-01-02", PublishedDate(firstTagBroken, fallback), "only the first non-empty tag is parsed")
	_, ok := MetatagDate(firstTagBroken)
	assert.False(t, ok)
}
