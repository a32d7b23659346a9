package search

import (
	"log/slog"
	"strings"

	"wax/internal/domain"
)

// State is the lifecycle phase of a search session.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateResultsLoaded
	StateLoadingMore
	StateError
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateResultsLoaded:
		return "results"
	case StateLoadingMore:
		return "loading more"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Request describes one page fetch the caller should perform. The
// generation ties the eventual response back to the session turn that
// issued it: responses from a superseded turn are dropped on arrival.
type Request struct {
	Query   string
	Filters domain.SearchFilters
	Page    int
	PerPage int

	generation uint64
}

// Session owns one search interaction: query, page cursor, accumulated
// results, and end-of-data detection. It is a synchronous state core;
// the caller performs the actual fetch for each Request and reports the
// outcome through Resolve or Fail.
//
// Session is not safe for concurrent use. It is designed to live inside
// a single event loop, with fetches running off-loop and their results
// delivered back as events.
type Session struct {
	filters domain.SearchFilters
	perPage int
	logger  *slog.Logger

	state      State
	generation uint64
	query      string
	page       int
	pagination domain.Pagination
	results    []domain.ReleaseSummary
	endOfData  bool
	errMsg     string
}

// NewSession creates a session. filters apply to every request; perPage
// <= 0 uses the server default page size.
func NewSession(filters domain.SearchFilters, perPage int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{filters: filters, perPage: perPage, logger: logger}
}

// Begin starts a new search. The query is trimmed; an empty query
// resets the session to idle and returns false. Any in-flight request
// from a previous turn is implicitly cancelled: its response will no
// longer match the current generation.
func (s *Session) Begin(query string) (Request, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.Clear()
		return Request{}, false
	}

	s.generation++
	s.state = StateSearching
	s.query = query
	s.page = 1
	s.pagination = domain.Pagination{}
	s.results = nil
	s.endOfData = false
	s.errMsg = ""

	s.logger.Debug("search started", "query", query, "generation", s.generation)

	return Request{
		Query:      query,
		Filters:    s.filters,
		Page:       1,
		PerPage:    s.perPage,
		generation: s.generation,
	}, true
}

// More requests the next page. It is honored only from ResultsLoaded
// with pages remaining; while a load is in flight the state is
// Searching or LoadingMore, so overlapping loads are refused here
// rather than deduplicated later.
func (s *Session) More() (Request, bool) {
	if s.state != StateResultsLoaded || s.endOfData {
		return Request{}, false
	}

	s.state = StateLoadingMore
	s.logger.Debug("loading more", "query", s.query, "page", s.page+1)

	return Request{
		Query:      s.query,
		Filters:    s.filters,
		Page:       s.page + 1,
		PerPage:    s.perPage,
		generation: s.generation,
	}, true
}

// Resolve applies a successful response. Returns false when the
// response is stale (the session moved on since the request was
// issued) and was discarded.
func (s *Session) Resolve(req Request, result domain.SearchResult) bool {
	if req.generation != s.generation {
		s.logger.Debug("dropping stale response", "query", req.Query, "page", req.Page)
		return false
	}

	switch s.state {
	case StateSearching:
		// Fresh search: this page replaces whatever was accumulated.
		s.results = result.Results
	case StateLoadingMore:
		// Append only; previously accumulated pages keep their order.
		s.results = append(s.results, result.Results...)
	default:
		return false
	}

	s.pagination = result.Pagination
	s.page = result.Pagination.Page
	if s.page == 0 {
		s.page = req.Page
	}
	s.endOfData = !result.Pagination.HasMore()
	s.state = StateResultsLoaded
	s.errMsg = ""

	s.logger.Debug("page resolved",
		"query", s.query,
		"page", s.page,
		"accumulated", len(s.results),
		"endOfData", s.endOfData)
	return true
}

// Fail applies a failed response. Accumulated results from before the
// failed request are preserved; a failed load-more does not discard
// prior pages. Returns false for stale failures.
func (s *Session) Fail(req Request, err error) bool {
	if req.generation != s.generation {
		return false
	}
	if s.state != StateSearching && s.state != StateLoadingMore {
		return false
	}

	s.state = StateError
	s.errMsg = err.Error()
	s.logger.Warn("search failed", "query", req.Query, "page", req.Page, "error", err)
	return true
}

// Clear resets the session to idle, discarding accumulated results.
// The generation bump implicitly cancels any in-flight request.
func (s *Session) Clear() {
	s.generation++
	s.state = StateIdle
	s.query = ""
	s.page = 0
	s.pagination = domain.Pagination{}
	s.results = nil
	s.endOfData = false
	s.errMsg = ""
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Query returns the active (trimmed) query string.
func (s *Session) Query() string { return s.query }

// Results returns the accumulated result sequence in server order.
func (s *Session) Results() []domain.ReleaseSummary { return s.results }

// Pagination returns the paging descriptor from the last response.
func (s *Session) Pagination() domain.Pagination { return s.pagination }

// TotalItems returns the total match count last reported by the server.
func (s *Session) TotalItems() int { return s.pagination.Items }

// HasMore reports whether further pages can still be requested.
func (s *Session) HasMore() bool { return !s.endOfData }

// Err returns the retained message of the last failure, if any.
func (s *Session) Err() string { return s.errMsg }
