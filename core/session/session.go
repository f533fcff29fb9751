// ABOUTME: Client-side search state: per-scope rows, loading and error state, selection
// ABOUTME: Submits run against any Searcher and only the newest request per scope is applied

package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/interfaces"
)

// EmptyQueryMessage is the error shown when a search is submitted without a query
const EmptyQueryMessage = "Please enter a search query."

var (
	// ErrEmptyQuery is returned by Submit for blank queries
	ErrEmptyQuery = errors.New(EmptyQueryMessage)

	// ErrSuperseded is returned to a request whose response arrived after a newer
	// request for the same scope was submitted. Its response is discarded.
	ErrSuperseded = errors.New("search superseded by a newer request")
)

// Options configures the requests a Session sends
type Options struct {
	// Limit is the row limit sent with every request; zero uses the server default
	Limit int

	// Regions and Keywords refine company searches
	Regions  []string
	Keywords []string

	// CompanyHint narrows people searches
	CompanyHint string

	// NewsHeaders is the news column set; empty uses domain.DefaultNewsHeaders
	NewsHeaders []string
}

// State is a snapshot of one scope
type State struct {
	Query    string
	Rows     []domain.Row
	Meta     *domain.SearchMeta
	Loading  bool
	Error    string
	Selected string
}

type scopeState struct {
	State
	generation uint64
	cancel     context.CancelFunc
}

// Session holds the search state of every scope plus the shared filter.
// It is safe for concurrent use.
type Session struct {
	searcher interfaces.Searcher
	opts     Options

	mu     sync.Mutex
	active domain.Scope
	filter Filter
	states map[domain.Scope]*scopeState
}

// New creates a session with news as the active scope
func New(searcher interfaces.Searcher, opts Options) *Session {
	if len(opts.NewsHeaders) == 0 {
		opts.NewsHeaders = domain.DefaultNewsHeaders
	}
	states := make(map[domain.Scope]*scopeState, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		states[scope] = &scopeState{}
	}
	return &Session{
		searcher: searcher,
		opts:     opts,
		active:   domain.ScopeNews,
		filter:   Filter{Match: domain.MatchAll},
		states:   states,
	}
}

// Active returns the active scope
func (s *Session) Active() domain.Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActive switches the active scope. Thresholds are kept as set.
func (s *Session) SetActive(scope domain.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = scope
}

// State returns a snapshot of the given scope
func (s *Session) State(scope domain.Scope) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[scope].State
	st.Rows = append([]domain.Row(nil), st.Rows...)
	if st.Meta != nil {
		meta := *st.Meta
		st.Meta = &meta
	}
	return st
}

// Submit searches the active scope
func (s *Session) Submit(ctx context.Context, query string) error {
	return s.SubmitScope(ctx, s.Active(), query)
}

// SubmitScope searches one scope. A blank query only sets the scope's error.
// Otherwise the scope's selection is cleared, any in-flight request for the
// scope is cancelled, and the response is applied unless a newer request was
// submitted meanwhile. On failure the previous rows are kept.
func (s *Session) SubmitScope(ctx context.Context, scope domain.Scope, query string) error {
	q := strings.TrimSpace(query)

	s.mu.Lock()
	st, ok := s.states[scope]
	if !ok {
		s.mu.Unlock()
		_, err := domain.ParseScope(string(scope))
		return err
	}
	if q == "" {
		st.Error = EmptyQueryMessage
		s.mu.Unlock()
		return ErrEmptyQuery
	}

	if st.cancel != nil {
		st.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	st.generation++
	gen := st.generation
	st.cancel = cancel
	st.Query = q
	st.Selected = ""
	st.Loading = true
	st.Error = ""
	s.mu.Unlock()

	rows, meta, err := s.run(reqCtx, scope, q)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != st.generation {
		return ErrSuperseded
	}
	st.cancel = nil
	st.Loading = false
	if err != nil {
		st.Error = err.Error()
		return err
	}
	st.Rows = rows
	st.Meta = &meta
	return nil
}

func (s *Session) run(ctx context.Context, scope domain.Scope, q string) ([]domain.Row, domain.SearchMeta, error) {
	switch scope {
	case domain.ScopeCompanies:
		res, err := s.searcher.SearchCompanies(ctx, domain.CompanyQuery{
			Query:    q,
			Limit:    s.limit(),
			Regions:  s.opts.Regions,
			Keywords: s.opts.Keywords,
		})
		return toRows(res, err)
	case domain.ScopePeople:
		res, err := s.searcher.SearchPeople(ctx, domain.PeopleQuery{
			Query:       q,
			Limit:       s.limit(),
			CompanyHint: s.opts.CompanyHint,
		})
		return toRows(res, err)
	default:
		res, err := s.searcher.SearchNews(ctx, domain.NewsQuery{Query: q, Limit: s.limit()})
		return toRows(res, err)
	}
}

// limit leaves the server default in place when no limit was configured
func (s *Session) limit() *int {
	if s.opts.Limit <= 0 {
		return nil
	}
	return domain.LimitOf(s.opts.Limit)
}

func toRows[T domain.Row](res *domain.SearchResult[T], err error) ([]domain.Row, domain.SearchMeta, error) {
	if err != nil {
		return nil, domain.SearchMeta{}, err
	}
	rows := make([]domain.Row, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = r
	}
	return rows, res.Meta, nil
}

// Select marks a row of the scope as selected. It reports false when the
// scope has no row with that id.
func (s *Session) Select(scope domain.Scope, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[scope]
	if st == nil {
		return false
	}
	for _, r := range st.Rows {
		if r.RowID() == id {
			st.Selected = id
			return true
		}
	}
	return false
}

// Selected returns the selected row of the scope
func (s *Session) Selected(scope domain.Scope) (domain.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[scope]
	if st == nil || st.Selected == "" {
		return nil, false
	}
	for _, r := range st.Rows {
		if r.RowID() == st.Selected {
			return r, true
		}
	}
	return nil, false
}

// ClearSelection drops the selection of the scope
func (s *Session) ClearSelection(scope domain.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st := s.states[scope]; st != nil {
		st.Selected = ""
	}
}

// Close cancels every in-flight request
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.states {
		if st.cancel != nil {
			st.cancel()
			st.cancel = nil
		}
	}
}
