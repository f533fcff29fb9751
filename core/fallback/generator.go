// ABOUTME: Deterministic synthetic news rows used when real results run short
// ABOUTME: Same query, count, offset and calendar day always produce the same rows

package fallback

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf16"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/extract"
	timeutil "leadsearch-api/pkg/utils/time"
)

// SourceName is the meta source reported for synthesized rows
const SourceName = "Fallback"

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32

	maxDaysBack = 90
	maxSlugLen  = 80
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Generator synthesizes plausible news rows from fixed vocabulary pools
type Generator struct {
	now func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock replaces the wall clock used for row dates
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a generator using the wall clock unless overridden
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns count rows for query. offset shifts both the random
// sequence and the index embedded in each URL, so a caller topping up n
// real rows passes offset=n.
func (g *Generator) Generate(query string, count, offset int) []domain.NewsRow {
	if count <= 0 {
		return nil
	}

	rng := newSeededRandom(uint64(hashString(query)) + uint64(max(offset, 0)))
	now := g.now()

	rows := make([]domain.NewsRow, 0, count)
	for i := 0; i < count; i++ {
		company := pick(rng, companyPool)
		topic := pick(rng, topicPool)
		action := pick(rng, actionPool)
		region := pick(rng, regionPool)
		source := pick(rng, sourcePool)
		daysBack := int(rng.next() * maxDaysBack)

		url := fmt.Sprintf("https://%s/news/%s", source.Domain,
			slugify(fmt.Sprintf("%s-%s-%s-%d", company, topic, action, i+offset)))

		rows = append(rows, domain.NewsRow{
			ID:     extract.StableID(url),
			Title:  fmt.Sprintf("%s %s %s %s", company, action, topic, region),
			URL:    url,
			Source: source.Name,
			Date:   timeutil.ISODate(now.AddDate(0, 0, -daysBack)),
			Summary: fmt.Sprintf("%s %s a %s initiative %s, highlighting momentum in device financing and telco-backed credit programs.",
				company, action, topic, region),
			Company:      company,
			MatchStatus:  domain.MatchStatusNeutral,
			Significance: domain.DefaultNewsScore,
			Relevance:    domain.DefaultNewsScore,
		})
	}
	return rows
}

// hashString is the 31-multiplier string hash over UTF-16 code units with
// 32-bit wraparound, returned as an absolute value.
func hashString(s string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// seededRandom is a linear congruential generator yielding floats in [0, 1)
type seededRandom struct {
	seed uint64
}

func newSeededRandom(seed uint64) *seededRandom {
	return &seededRandom{seed: seed}
}

func (r *seededRandom) next() float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.seed) / lcgModulus
}

func pick[T any](r *seededRandom, pool []T) T {
	return pool[int(r.next()*float64(len(pool)))]
}

func slugify(s string) string {
	slug := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}
