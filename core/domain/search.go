// ABOUTME: Search domain models for provider results, queries and responses
// ABOUTME: Defines the transient raw result shape and the per-scope query types

package domain

// RawSearchResult is one item returned by the external search provider.
// It only lives for the duration of a single extraction call.
type RawSearchResult struct {
	// Title is the result headline
	Title string `json:"title,omitempty"`

	// Link is the result URL
	Link string `json:"link,omitempty"`

	// Snippet is the short text excerpt shown by the provider
	Snippet string `json:"snippet,omitempty"`

	// DisplayLink is the site label, e.g. "www.acme.com"
	DisplayLink string `json:"displayLink,omitempty"`

	// Metatags holds the first pagemap metatags entry (publish dates and similar)
	Metatags map[string]string `json:"metatags,omitempty"`
}

// SearchMeta describes a search response. Diagnostic only.
type SearchMeta struct {
	Source    string `json:"source" doc:"Label of the source that produced the rows"`
	Requested int    `json:"requested" doc:"Limit asked for"`
	Returned  int    `json:"returned" doc:"Rows actually produced"`
}

// SearchResult is the output of one pipeline run for a scope
type SearchResult[T any] struct {
	Rows []T        `json:"rows"`
	Meta SearchMeta `json:"meta"`
}

// CompanyQuery holds the parameters for a companies search
type CompanyQuery struct {
	Query    string
	Limit    *int
	Regions  []string
	Keywords []string
}

// PeopleQuery holds the parameters for a people search
type PeopleQuery struct {
	Query       string
	Limit       *int
	CompanyHint string
}

// NewsQuery holds the parameters for a news search
type NewsQuery struct {
	Query string
	Limit *int
}

// LimitOf returns n as a query limit. A nil Limit selects the default.
func LimitOf(n int) *int {
	return &n
}
