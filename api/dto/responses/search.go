// ABOUTME: Response DTOs for the search and health endpoints
// ABOUTME: Every success body carries ok=true next to rows and meta

package responses

import "leadsearch-api/core/domain"

// CompanySearchResponse is the success body of POST /search/companies
type CompanySearchResponse struct {
	OK   bool                `json:"ok" doc:"Always true on success"`
	Rows []domain.CompanyRow `json:"rows" doc:"Deduplicated company rows"`
	Meta domain.SearchMeta   `json:"meta"`
}

// PeopleSearchResponse is the success body of POST /search/people
type PeopleSearchResponse struct {
	OK   bool               `json:"ok" doc:"Always true on success"`
	Rows []domain.PeopleRow `json:"rows" doc:"Deduplicated profile rows"`
	Meta domain.SearchMeta  `json:"meta"`
}

// NewsSearchResponse is the success body of POST /search/news
type NewsSearchResponse struct {
	OK   bool              `json:"ok" doc:"Always true on success"`
	Rows []domain.NewsRow  `json:"rows" doc:"Provider rows first, then fallback rows"`
	Meta domain.SearchMeta `json:"meta"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status           string `json:"status" example:"ok"`
	SearchConfigured bool   `json:"searchConfigured" doc:"Whether provider credentials are set"`
}

// ErrorResponse documents the failure envelope
type ErrorResponse struct {
	OK      bool     `json:"ok" doc:"Always false"`
	Error   string   `json:"error" doc:"Human readable message"`
	Details []string `json:"details,omitempty" doc:"Per-field or upstream details"`
}
