package tui

import (
	"wax/internal/domain"
	"wax/internal/search"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SearchPageMsg delivers one page of catalog search results. Req is the
// request the session issued; the session uses it to detect and drop
// responses from a superseded search.
type SearchPageMsg struct {
	Req    search.Request
	Result domain.SearchResult
}

// SearchFailedMsg signals that a page fetch failed
type SearchFailedMsg struct {
	Req search.Request
	Err error
}

// CollectionLoadedMsg signals that the enriched collection is ready
type CollectionLoadedMsg struct {
	Items []domain.EnrichedRelease
}

// WishlistLoadedMsg signals that the enriched wishlist is ready
type WishlistLoadedMsg struct {
	Items []domain.EnrichedRelease
}

// ReleaseLoadedMsg signals that full release details are ready
type ReleaseLoadedMsg struct {
	Item       domain.EnrichedRelease
	Wishlisted bool
}

// EntryAddedMsg signals that a release was added to the collection
type EntryAddedMsg struct {
	ID    int
	Title string
}

// EntryRemovedMsg signals that a release was removed from the collection
type EntryRemovedMsg struct {
	ID int
}

// EntryUpdatedMsg signals that a rating or review was saved
type EntryUpdatedMsg struct {
	ID int
}

// WishlistChangedMsg signals a wishlist add or removal
type WishlistChangedMsg struct {
	ID    int
	Added bool
}

// StatusMsg sets a temporary status bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg drives the loading spinner
type TickMsg struct{}
