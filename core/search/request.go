// ABOUTME: Request validation and provider query construction per scope
// ABOUTME: Validation reports every violated field at once

package search

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"leadsearch-api/core/domain"
	apperrors "leadsearch-api/core/errors"
)

const (
	// DefaultLimit applies when a request leaves limit unset
	DefaultLimit = 25

	// MaxLimit is the largest number of rows a request can ask for
	MaxLimit = 50

	minQueryLength = 2
	maxQueryLength = 200

	peopleSiteFilter = "(site:linkedin.com/in OR site:linkedin.com/pub OR site:crunchbase.com/person OR site:about.me)"
)

// normalizeRequest trims the query and resolves the limit: nil becomes the
// default, anything below 1 is rejected and anything above MaxLimit is clamped.
func normalizeRequest(query string, requested *int) (string, int, error) {
	q := strings.TrimSpace(query)

	var errs apperrors.ValidationErrors
	switch n := utf8.RuneCountInString(q); {
	case n < minQueryLength:
		errs = append(errs, &apperrors.ValidationError{
			Field:   "query",
			Message: "must be at least " + strconv.Itoa(minQueryLength) + " characters",
		})
	case n > maxQueryLength:
		errs = append(errs, &apperrors.ValidationError{
			Field:   "query",
			Message: "must be at most " + strconv.Itoa(maxQueryLength) + " characters",
		})
	}

	limit := DefaultLimit
	if requested != nil {
		limit = *requested
	}
	switch {
	case limit < 1:
		errs = append(errs, &apperrors.ValidationError{Field: "limit", Message: "must be at least 1"})
	case limit > MaxLimit:
		limit = MaxLimit
	}

	if len(errs) > 0 {
		return "", 0, errs
	}
	return q, limit, nil
}

// cleanList trims entries and drops blanks
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func buildCompanyQuery(q string, keywords, regions []string) string {
	parts := []string{q}
	parts = append(parts, keywords...)
	if len(regions) > 0 {
		parts = append(parts, "("+strings.Join(regions, " OR ")+")")
	}
	parts = append(parts, "company official site")
	return strings.Join(parts, " ")
}

func buildPeopleQuery(q, companyHint string) string {
	parts := []string{q}
	if hint := strings.TrimSpace(companyHint); hint != "" {
		parts = append(parts, `"`+hint+`"`)
	}
	parts = append(parts, peopleSiteFilter)
	return strings.Join(parts, " ")
}

func buildNewsQuery(q, suffix string) string {
	if suffix = strings.TrimSpace(suffix); suffix == "" {
		return q
	}
	return q + " " + suffix
}

// cacheKey identifies a response by everything that shapes it
func cacheKey(scope domain.Scope, limit int, builtQuery string) string {
	return "search:" + string(scope) + ":" + strconv.Itoa(limit) + ":" + builtQuery
}
