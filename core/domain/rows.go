// ABOUTME: Flat row models produced by the normalization pipeline
// ABOUTME: Company, people and news rows ready for tabular display and export

package domain

import (
	"fmt"
	"strconv"
)

const (
	// DefaultScore is the placeholder significance/relevance for companies and people
	DefaultScore = 50.0

	// DefaultNewsScore is the placeholder significance/relevance for news (0-5 scale)
	DefaultNewsScore = 2.5
)

// Row is implemented by every row type so filters and selection work across scopes
type Row interface {
	// RowID returns the stable id of the row
	RowID() string

	// Match returns the row's match status
	Match() MatchStatus

	// Scores returns significance and relevance
	Scores() (significance, relevance float64)

	// Value resolves a display header to a cell value
	Value(header string) any
}

// CompanyRow is one normalized company result
type CompanyRow struct {
	ID           string      `json:"id" doc:"Stable key derived from the website URL"`
	CompanyName  string      `json:"companyName"`
	Website      string      `json:"website" doc:"Normalized absolute URL without fragment"`
	Description  string      `json:"description"`
	Source       string      `json:"source"`
	ResultType   string      `json:"resultType" enum:"company"`
	MatchStatus  MatchStatus `json:"matchStatus" enum:"Match,No Match,Neutral"`
	Significance float64     `json:"significance" minimum:"0" maximum:"100"`
	Relevance    float64     `json:"relevance" minimum:"0" maximum:"100"`
	RegionFocus  string      `json:"regionFocus,omitempty"`
	Segment      string      `json:"segment,omitempty"`
	Tags         string      `json:"tags,omitempty" doc:"Comma-separated"`
	Date         string      `json:"date,omitempty"`
	Domain       string      `json:"domain,omitempty"`
	Employees    string      `json:"employees,omitempty"`
	Funding      string      `json:"funding,omitempty"`
	Location     string      `json:"location,omitempty"`
	Industry     string      `json:"industry,omitempty"`
	Founded      string      `json:"founded,omitempty"`
}

func (r CompanyRow) RowID() string {
	return r.ID
}

func (r CompanyRow) Match() MatchStatus {
	return r.MatchStatus.Normalize()
}

func (r CompanyRow) Scores() (float64, float64) {
	return r.Significance, r.Relevance
}

// CompanyHeaders is the companies column set in display order
var CompanyHeaders = []string{"Company", "Source", "Date", "Match", "Significance", "Relevance", "Summary"}

func (r CompanyRow) Value(header string) any {
	switch header {
	case "Company":
		return r.CompanyName
	case "Source":
		return r.Source
	case "Date":
		return r.Date
	case "Match":
		return string(r.Match())
	case "Significance":
		return r.Significance
	case "Relevance":
		return r.Relevance
	case "Summary", "Description":
		return r.Description
	case "Website", "URL":
		return r.Website
	case "Domain":
		return r.Domain
	case "Tags":
		return r.Tags
	case "Location":
		return r.Location
	case "Industry":
		return r.Industry
	case "Employees":
		return r.Employees
	case "Funding":
		return r.Funding
	case "Founded":
		return r.Founded
	}
	return ""
}

// PeopleRow is one normalized person result
type PeopleRow struct {
	ID           string      `json:"id" doc:"Stable key derived from the profile URL"`
	PersonName   string      `json:"personName"`
	Role         string      `json:"role"`
	Company      string      `json:"company"`
	ProfileURL   string      `json:"profileUrl"`
	Source       string      `json:"source"`
	ResultType   string      `json:"resultType" enum:"person"`
	MatchStatus  MatchStatus `json:"matchStatus" enum:"Match,No Match,Neutral"`
	Significance float64     `json:"significance" minimum:"0" maximum:"100"`
	Relevance    float64     `json:"relevance" minimum:"0" maximum:"100"`
	Tags         string      `json:"tags,omitempty"`
	Date         string      `json:"date,omitempty"`
}

func (r PeopleRow) RowID() string {
	return r.ID
}

func (r PeopleRow) Match() MatchStatus {
	return r.MatchStatus.Normalize()
}

func (r PeopleRow) Scores() (float64, float64) {
	return r.Significance, r.Relevance
}

// PeopleHeaders is the people column set in display order
var PeopleHeaders = []string{"Person", "Source", "Date", "Match", "Significance", "Relevance", "Summary"}

func (r PeopleRow) Value(header string) any {
	switch header {
	case "Person":
		return r.PersonName
	case "Role":
		return r.Role
	case "Company":
		return r.Company
	case "Source":
		return r.Source
	case "Date":
		return r.Date
	case "Match":
		return string(r.Match())
	case "Significance":
		return r.Significance
	case "Relevance":
		return r.Relevance
	case "Summary":
		return r.Summary()
	case "Profile", "URL":
		return r.ProfileURL
	case "Tags":
		return r.Tags
	}
	return ""
}

// Summary is the people grid's derived summary column
func (r PeopleRow) Summary() string {
	switch {
	case r.Role != "" && r.Company != "":
		return r.Role + " at " + r.Company
	case r.Role != "":
		return r.Role
	default:
		return r.Company
	}
}

// NewsRow is one news result. The typed fields are the required subset;
// Extra carries additional display columns (string or number values only).
type NewsRow struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	URL          string         `json:"url"`
	Source       string         `json:"source"`
	Date         string         `json:"date"`
	Summary      string         `json:"summary"`
	Company      string         `json:"company,omitempty"`
	MatchStatus  MatchStatus    `json:"matchStatus" enum:"Match,No Match,Neutral"`
	Significance float64        `json:"significance" minimum:"0" maximum:"5"`
	Relevance    float64        `json:"relevance" minimum:"0" maximum:"5"`
	Extra        map[string]any `json:"extra,omitempty" doc:"Additional columns keyed by header"`
}

func (r NewsRow) RowID() string {
	return r.ID
}

func (r NewsRow) Match() MatchStatus {
	return r.MatchStatus.Normalize()
}

func (r NewsRow) Scores() (float64, float64) {
	return r.Significance, r.Relevance
}

// DefaultNewsHeaders is the news column set in display order
var DefaultNewsHeaders = []string{"Title", "Source", "Date", "Match", "Significance", "Relevance", "Summary"}

// Value resolves a display header to the row's value
func (r NewsRow) Value(header string) any {
	switch header {
	case "Title":
		return r.Title
	case "Source":
		return r.Source
	case "Date":
		return r.Date
	case "Match":
		return string(r.Match())
	case "Significance":
		return r.Significance
	case "Relevance":
		return r.Relevance
	case "Summary", "Description":
		return r.Summary
	case "URL", "Url":
		return r.URL
	case "Company":
		return r.Company
	}
	if v, ok := r.Extra[header]; ok {
		return v
	}
	return ""
}

// Validate checks the required subset and that extension values are strings or numbers
func (r NewsRow) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("news row %q: title is required", r.ID)
	}
	if r.URL == "" {
		return fmt.Errorf("news row %q: url is required", r.ID)
	}
	for k, v := range r.Extra {
		switch v.(type) {
		case string, float64, float32, int, int64, int32:
		default:
			return fmt.Errorf("news row %q: extra field %q must be a string or number, got %T", r.ID, k, v)
		}
	}
	return nil
}

// FormatCell renders a cell value for tables and CSV export
func FormatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	}
	return fmt.Sprint(v)
}
