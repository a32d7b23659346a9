package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wax/internal/collection"
	"wax/internal/domain"
	"wax/internal/search"
)

// Command factories for async operations

// FetchPageCmd performs the page fetch described by a session request.
// The request travels with the outcome so the session can drop results
// that arrive after the search moved on.
func FetchPageCmd(catalog domain.CatalogClient, req search.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := catalog.Search(ctx, req.Query, req.Filters, req.Page, req.PerPage)
		if err != nil {
			return SearchFailedMsg{Req: req, Err: err}
		}
		return SearchPageMsg{Req: req, Result: result}
	}
}

// LoadCollectionCmd loads the collection with fresh catalog details
func LoadCollectionCmd(svc *collection.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		items, err := svc.EnrichedCollection(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading collection"}
		}
		return CollectionLoadedMsg{Items: items}
	}
}

// LoadWishlistCmd loads the wishlist with fresh catalog details
func LoadWishlistCmd(svc *collection.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		items, err := svc.EnrichedWishlist(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading wishlist"}
		}
		return WishlistLoadedMsg{Items: items}
	}
}

// LoadReleaseCmd loads full details for one release
func LoadReleaseCmd(svc *collection.Service, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		item, wishlisted, err := svc.GetEnriched(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading release"}
		}
		return ReleaseLoadedMsg{Item: item, Wishlisted: wishlisted}
	}
}

// AddEntryCmd adds a release to the collection
func AddEntryCmd(svc *collection.Service, id int, title string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Add(domain.CollectionEntry{ID: id}); err != nil {
			return ErrMsg{Err: err, Context: "adding to collection"}
		}
		return EntryAddedMsg{ID: id, Title: title}
	}
}

// RemoveEntryCmd removes a release from the collection
func RemoveEntryCmd(svc *collection.Service, id int) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Remove(id); err != nil {
			return ErrMsg{Err: err, Context: "removing from collection"}
		}
		return EntryRemovedMsg{ID: id}
	}
}

// SetRatingCmd saves a star rating
func SetRatingCmd(svc *collection.Service, id, rating int) tea.Cmd {
	return func() tea.Msg {
		if err := svc.SetRating(id, rating); err != nil {
			return ErrMsg{Err: err, Context: "saving rating"}
		}
		return EntryUpdatedMsg{ID: id}
	}
}

// SetReviewCmd saves review text
func SetReviewCmd(svc *collection.Service, id int, review string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.SetReview(id, review); err != nil {
			return ErrMsg{Err: err, Context: "saving review"}
		}
		return EntryUpdatedMsg{ID: id}
	}
}

// ToggleWishlistCmd adds or removes a release from the wishlist
func ToggleWishlistCmd(svc *collection.Service, id int, wishlisted bool) tea.Cmd {
	return func() tea.Msg {
		if wishlisted {
			if err := svc.RemoveFromWishlist(id); err != nil {
				return ErrMsg{Err: err, Context: "removing from wishlist"}
			}
			return WishlistChangedMsg{ID: id, Added: false}
		}
		if err := svc.AddToWishlist(id); err != nil {
			return ErrMsg{Err: err, Context: "adding to wishlist"}
		}
		return WishlistChangedMsg{ID: id, Added: true}
	}
}

// TickCmd returns a command that sends a tick after the given duration
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status bar after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
