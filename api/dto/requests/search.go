// ABOUTME: Request DTOs for the search endpoints
// ABOUTME: Bodies map one to one onto the core query types

package requests

import "leadsearch-api/core/domain"

// CompanySearchRequest is the body of POST /search/companies
type CompanySearchRequest struct {
	// Query is the free-text description of the target market
	Query string `json:"query" doc:"Free-text description of the target market" example:"AI sales copilots"`

	// Limit is the number of rows wanted
	Limit *int `json:"limit,omitempty" doc:"Rows wanted (default 25, minimum 1, values above 50 are clamped)" example:"25"`

	// Regions are OR-ed together in the provider query
	Regions []string `json:"regions,omitempty" doc:"Regions to focus on"`

	// Keywords are appended to the provider query
	Keywords []string `json:"keywords,omitempty" doc:"Extra keywords"`
}

// ToQuery converts the request into the core query
func (r CompanySearchRequest) ToQuery() domain.CompanyQuery {
	return domain.CompanyQuery{
		Query:    r.Query,
		Limit:    r.Limit,
		Regions:  r.Regions,
		Keywords: r.Keywords,
	}
}

// PeopleSearchRequest is the body of POST /search/people
type PeopleSearchRequest struct {
	Query       string `json:"query" doc:"Role or person to look for" example:"head of sales"`
	Limit       *int   `json:"limit,omitempty" doc:"Rows wanted (default 25, minimum 1, values above 50 are clamped)" example:"25"`
	CompanyHint string `json:"companyHint,omitempty" doc:"Company name to narrow the search" example:"Acme"`
}

// ToQuery converts the request into the core query
func (r PeopleSearchRequest) ToQuery() domain.PeopleQuery {
	return domain.PeopleQuery{
		Query:       r.Query,
		Limit:       r.Limit,
		CompanyHint: r.CompanyHint,
	}
}

// NewsSearchRequest is the body of POST /search/news
type NewsSearchRequest struct {
	Query string `json:"query" doc:"Topic or company to find news about" example:"BNPL device financing"`
	Limit *int   `json:"limit,omitempty" doc:"Rows wanted (default 25, minimum 1, values above 50 are clamped)" example:"25"`
}

// ToQuery converts the request into the core query
func (r NewsSearchRequest) ToQuery() domain.NewsQuery {
	return domain.NewsQuery{Query: r.Query, Limit: r.Limit}
}
