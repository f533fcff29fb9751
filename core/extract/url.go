// ABOUTME: URL normalization and stable id derivation for result rows
// ABOUTME: Every dedup decision in the pipeline goes through these helpers

package extract

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// stableIDLength is the number of hex characters kept from the UUIDv5
const stableIDLength = 24

// NormalizeURL parses raw as an absolute URL, clears the fragment and keeps
// the query string. Anything that is not an absolute URL is returned unchanged.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// DedupKey is the canonical form used to decide whether two links are the same
// row: NormalizeURL plus a lowercased host and no trailing slash on non-root paths.
func DedupKey(raw string) string {
	normalized := NormalizeURL(raw)
	u, err := url.Parse(normalized)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return normalized
	}
	u.Host = strings.ToLower(u.Host)
	if len(u.Path) > 1 {
		u.Path = strings.TrimRight(u.Path, "/")
		if u.Path == "" {
			u.Path = "/"
		}
		u.RawPath = ""
	}
	return u.String()
}

// StableID derives a short deterministic key from a URL.
// Links that share a DedupKey share an id.
func StableID(raw string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(DedupKey(raw)))
	return strings.ReplaceAll(id.String(), "-", "")[:stableIDLength]
}

// Hostname returns the lowercased host of raw without a leading "www.", or "" when raw is not a URL
func Hostname(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// RegistrableDomain returns the company domain a result points at.
// LinkedIn company pages and Crunchbase organizations map to "<slug>.com";
// other links resolve to their eTLD+1.
func RegistrableDomain(link string) (string, bool) {
	if slug := pathSlugAfter(link, "linkedin.com/company/"); slug != "" {
		return slug + ".com", true
	}
	if slug := pathSlugAfter(link, "crunchbase.com/organization/"); slug != "" {
		return slug + ".com", true
	}

	host := Hostname(link)
	if host == "" || !strings.Contains(host, ".") {
		return "", false
	}
	domain, err := publicsuffix.Domain(host)
	if err != nil {
		return "", false
	}
	return domain, true
}

func pathSlugAfter(link, marker string) string {
	idx := strings.Index(link, marker)
	if idx < 0 {
		return ""
	}
	rest := link[idx+len(marker):]
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		rest = rest[:end]
	}
	return strings.ToLower(rest)
}
