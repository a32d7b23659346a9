package domain

import "context"

// CatalogClient provides access to the remote release catalog.
// Implementations are stateless request/response wrappers: no retries,
// no caching, no rate limiting.
type CatalogClient interface {
	// Search returns one page of results for the query.
	// page is 1-based; perPage <= 0 uses the server default.
	Search(ctx context.Context, query string, filters SearchFilters, page, perPage int) (SearchResult, error)

	// GetRelease returns the full record for a release.
	// id must be a positive catalog identifier.
	GetRelease(ctx context.Context, id int) (*Release, error)
}

// CollectionStore is the durable store for the user's collection and
// wishlist. Each collection is persisted as a single serialized blob,
// rewritten in full on every mutation. Two mutations racing on the same
// blob resolve last-write-wins; callers issue mutations sequentially.
type CollectionStore interface {
	// ListCollection returns all entries in stored order.
	// An uninitialized store yields an empty slice, never an error.
	ListCollection() ([]CollectionEntry, error)

	// AddEntry appends an entry. Fails with ErrDuplicateEntry if an
	// entry with the same id already exists.
	AddEntry(entry CollectionEntry) error

	// RemoveEntry deletes the entry with the given release id.
	// Fails with ErrNotFound if absent.
	RemoveEntry(id int) error

	// UpdateEntry merges the set fields of update into the existing
	// entry. Fails with ErrNotFound if absent.
	UpdateEntry(id int, update EntryUpdate) error

	// ListWishlist returns all wishlist entries in stored order.
	ListWishlist() ([]WishlistEntry, error)

	// AddWishlistEntry adds an id to the wishlist. Adding an id that is
	// already present is a no-op.
	AddWishlistEntry(id int) error

	// RemoveWishlistEntry deletes an id from the wishlist.
	// Fails with ErrNotFound if absent.
	RemoveWishlistEntry(id int) error

	Close() error
}
