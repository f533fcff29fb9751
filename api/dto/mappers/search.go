// ABOUTME: Maps core search results onto response DTOs
// ABOUTME: Empty results always serialize rows as an empty array

package mappers

import (
	"leadsearch-api/api/dto/responses"
	"leadsearch-api/core/domain"
)

// ToCompanySearchResponse converts a companies result
func ToCompanySearchResponse(res *domain.SearchResult[domain.CompanyRow]) responses.CompanySearchResponse {
	return responses.CompanySearchResponse{OK: true, Rows: rowsOrEmpty(res.Rows), Meta: res.Meta}
}

// ToPeopleSearchResponse converts a people result
func ToPeopleSearchResponse(res *domain.SearchResult[domain.PeopleRow]) responses.PeopleSearchResponse {
	return responses.PeopleSearchResponse{OK: true, Rows: rowsOrEmpty(res.Rows), Meta: res.Meta}
}

// ToNewsSearchResponse converts a news result
func ToNewsSearchResponse(res *domain.SearchResult[domain.NewsRow]) responses.NewsSearchResponse {
	return responses.NewsSearchResponse{OK: true, Rows: rowsOrEmpty(res.Rows), Meta: res.Meta}
}

// FromCompanySearchResponse is the inverse used by API clients
func FromCompanySearchResponse(resp responses.CompanySearchResponse) *domain.SearchResult[domain.CompanyRow] {
	return &domain.SearchResult[domain.CompanyRow]{Rows: rowsOrEmpty(resp.Rows), Meta: resp.Meta}
}

// FromPeopleSearchResponse is the inverse used by API clients
func FromPeopleSearchResponse(resp responses.PeopleSearchResponse) *domain.SearchResult[domain.PeopleRow] {
	return &domain.SearchResult[domain.PeopleRow]{Rows: rowsOrEmpty(resp.Rows), Meta: resp.Meta}
}

// FromNewsSearchResponse is the inverse used by API clients
func FromNewsSearchResponse(resp responses.NewsSearchResponse) *domain.SearchResult[domain.NewsRow] {
	return &domain.SearchResult[domain.NewsRow]{Rows: rowsOrEmpty(resp.Rows), Meta: resp.Meta}
}

func rowsOrEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
