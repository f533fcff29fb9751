// ABOUTME: Search handlers for the Huma API
// ABOUTME: Exposes the companies, people and news pipelines over HTTP

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"leadsearch-api/api/dto/mappers"
	"leadsearch-api/api/dto/requests"
	"leadsearch-api/api/dto/responses"
	"leadsearch-api/core/interfaces"
)

// SearchHandler handles the search endpoints
type SearchHandler struct {
	searcher interfaces.Searcher
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searcher interfaces.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// RegisterRoutes registers all search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchCompanies",
		Method:      http.MethodPost,
		Path:        "/search/companies",
		Summary:     "Search companies",
		Description: "Finds company websites matching a market description and normalizes them into company rows",
		Tags:        []string{"Search"},
		Middlewares: huma.Middlewares{remapValidationStatus},
	}, h.SearchCompanies)

	huma.Register(api, huma.Operation{
		OperationID: "searchPeople",
		Method:      http.MethodPost,
		Path:        "/search/people",
		Summary:     "Search people",
		Description: "Finds public professional profiles and parses name, role and company",
		Tags:        []string{"Search"},
		Middlewares: huma.Middlewares{remapValidationStatus},
	}, h.SearchPeople)

	huma.Register(api, huma.Operation{
		OperationID: "searchNews",
		Method:      http.MethodPost,
		Path:        "/search/news",
		Summary:     "Search news",
		Description: "Finds news articles; short or failed provider results are topped up with generated rows",
		Tags:        []string{"Search"},
		Middlewares: huma.Middlewares{remapValidationStatus},
	}, h.SearchNews)
}

// CompanySearchInput defines the input for the SearchCompanies operation
type CompanySearchInput struct {
	Body requests.CompanySearchRequest
}

// CompanySearchOutput defines the output for the SearchCompanies operation
type CompanySearchOutput struct {
	Body responses.CompanySearchResponse
}

// SearchCompanies handles POST /search/companies
func (h *SearchHandler) SearchCompanies(ctx context.Context, input *CompanySearchInput) (*CompanySearchOutput, error) {
	res, err := h.searcher.SearchCompanies(ctx, input.Body.ToQuery())
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CompanySearchOutput{Body: mappers.ToCompanySearchResponse(res)}, nil
}

// PeopleSearchInput defines the input for the SearchPeople operation
type PeopleSearchInput struct {
	Body requests.PeopleSearchRequest
}

// PeopleSearchOutput defines the output for the SearchPeople operation
type PeopleSearchOutput struct {
	Body responses.PeopleSearchResponse
}

// SearchPeople handles POST /search/people
func (h *SearchHandler) SearchPeople(ctx context.Context, input *PeopleSearchInput) (*PeopleSearchOutput, error) {
	res, err := h.searcher.SearchPeople(ctx, input.Body.ToQuery())
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PeopleSearchOutput{Body: mappers.ToPeopleSearchResponse(res)}, nil
}

// NewsSearchInput defines the input for the SearchNews operation
type NewsSearchInput struct {
	Body requests.NewsSearchRequest
}

// NewsSearchOutput defines the output for the SearchNews operation
type NewsSearchOutput struct {
	Body responses.NewsSearchResponse
}

// SearchNews handles POST /search/news
func (h *SearchHandler) SearchNews(ctx context.Context, input *NewsSearchInput) (*NewsSearchOutput, error) {
	res, err := h.searcher.SearchNews(ctx, input.Body.ToQuery())
	if err != nil {
		return nil, toHumaError(err)
	}
	return &NewsSearchOutput{Body: mappers.ToNewsSearchResponse(res)}, nil
}
