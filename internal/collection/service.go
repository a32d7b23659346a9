package collection

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"wax/internal/domain"
)

// Service joins the local collection store with the remote catalog to
// produce the enriched views the UI renders.
type Service struct {
	store   domain.CollectionStore
	catalog domain.CatalogClient
	logger  *slog.Logger
}

// NewService creates a new collection service.
func NewService(store domain.CollectionStore, catalog domain.CatalogClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, catalog: catalog, logger: logger}
}

// EnrichedCollection returns the user's collection joined with fresh
// catalog details. Detail fetches run concurrently, one per entry, so
// latency is bounded by the slowest fetch; the returned order always
// matches the stable store order, not completion order.
func (s *Service) EnrichedCollection(ctx context.Context) ([]domain.EnrichedRelease, error) {
	entries, err := s.store.ListCollection()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	releases := make([]*domain.Release, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			releases[i], errs[i] = s.catalog.GetRelease(ctx, id)
		}(i, entry.ID)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.Error("detail fetch failed", "id", entries[i].ID, "error", err)
			return nil, err
		}
	}

	enriched := make([]domain.EnrichedRelease, len(entries))
	for i := range entries {
		enriched[i] = domain.Enrich(*releases[i], &entries[i])
	}

	s.logger.Debug("enriched collection", "count", len(enriched))
	return enriched, nil
}

// EnrichedWishlist returns catalog details for every wishlist entry, in
// stored order. Wishlist entries carry no annotations, so the items come
// back without a rating or review.
func (s *Service) EnrichedWishlist(ctx context.Context) ([]domain.EnrichedRelease, error) {
	entries, err := s.store.ListWishlist()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	releases := make([]*domain.Release, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			releases[i], errs[i] = s.catalog.GetRelease(ctx, id)
		}(i, entry.ID)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.Error("detail fetch failed", "id", entries[i].ID, "error", err)
			return nil, err
		}
	}

	enriched := make([]domain.EnrichedRelease, len(entries))
	for i := range entries {
		enriched[i] = domain.Enrich(*releases[i], nil)
	}
	return enriched, nil
}

// GetEnriched returns one release joined with its collection entry, if
// any, plus its wishlist membership. The detail fetch and both local
// reads are issued concurrently.
func (s *Service) GetEnriched(ctx context.Context, id int) (domain.EnrichedRelease, bool, error) {
	var (
		wg       sync.WaitGroup
		release  *domain.Release
		relErr   error
		entries  []domain.CollectionEntry
		wishlist []domain.WishlistEntry
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		release, relErr = s.catalog.GetRelease(ctx, id)
	}()
	go func() {
		defer wg.Done()
		entries, _ = s.store.ListCollection()
	}()
	go func() {
		defer wg.Done()
		wishlist, _ = s.store.ListWishlist()
	}()
	wg.Wait()

	if relErr != nil {
		return domain.EnrichedRelease{}, false, relErr
	}

	var entry *domain.CollectionEntry
	for i := range entries {
		if entries[i].ID == id {
			entry = &entries[i]
			break
		}
	}

	wishlisted := false
	for _, w := range wishlist {
		if w.ID == id {
			wishlisted = true
			break
		}
	}

	return domain.Enrich(*release, entry), wishlisted, nil
}

// Add puts a release into the collection.
func (s *Service) Add(entry domain.CollectionEntry) error {
	return s.store.AddEntry(entry)
}

// Remove deletes a release from the collection by id.
func (s *Service) Remove(id int) error {
	return s.store.RemoveEntry(id)
}

// SetRating updates only the star rating of an entry.
func (s *Service) SetRating(id, rating int) error {
	return s.store.UpdateEntry(id, domain.EntryUpdate{Rating: &rating})
}

// SetReview updates only the review text of an entry.
func (s *Service) SetReview(id int, review string) error {
	return s.store.UpdateEntry(id, domain.EntryUpdate{Review: &review})
}

// InCollection reports whether a release id has a collection entry.
func (s *Service) InCollection(id int) (bool, error) {
	entries, err := s.store.ListCollection()
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// AddToWishlist adds a release id to the wishlist.
func (s *Service) AddToWishlist(id int) error {
	return s.store.AddWishlistEntry(id)
}

// RemoveFromWishlist deletes a release id from the wishlist.
func (s *Service) RemoveFromWishlist(id int) error {
	return s.store.RemoveWishlistEntry(id)
}

// Wishlist returns all wishlist entries in stored order.
func (s *Service) Wishlist() ([]domain.WishlistEntry, error) {
	return s.store.ListWishlist()
}

// Filter ranks the enriched list against a fuzzy query on title and
// artists. An empty query returns the input unchanged.
func Filter(items []domain.EnrichedRelease, query string) []domain.EnrichedRelease {
	if query == "" {
		return items
	}

	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = item.ArtistLine() + " " + item.Title
	}

	matches := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Sort(matches)

	filtered := make([]domain.EnrichedRelease, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, items[match.OriginalIndex])
	}
	return filtered
}
