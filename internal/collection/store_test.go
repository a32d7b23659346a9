package collection_test

import (
	"errors"
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	"wax/internal/collection"
	"wax/internal/domain"
)

func openMemStore(t *testing.T) *collection.Store {
	t.Helper()
	store, err := collection.Open("", nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmptyStoreListsNothing(t *testing.T) {
	store := openMemStore(t)

	entries, err := store.ListCollection()
	if err != nil {
		t.Fatalf("ListCollection failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty collection, got %d entries", len(entries))
	}

	wishlist, err := store.ListWishlist()
	if err != nil {
		t.Fatalf("ListWishlist failed: %v", err)
	}
	if len(wishlist) != 0 {
		t.Fatalf("expected empty wishlist, got %d entries", len(wishlist))
	}
}

func TestAddListRemoveRoundTrip(t *testing.T) {
	store := openMemStore(t)

	entry := domain.CollectionEntry{ID: 101, Rating: 5, Review: "great"}
	if err := store.AddEntry(entry); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	entries, _ := store.ListCollection()
	if len(entries) != 1 || entries[0] != entry {
		t.Fatalf("unexpected collection state: %#v", entries)
	}

	// Duplicate add must fail and leave the store untouched.
	err := store.AddEntry(domain.CollectionEntry{ID: 101, Rating: 2})
	if !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	entries, _ = store.ListCollection()
	if len(entries) != 1 {
		t.Fatalf("duplicate add changed the store: %#v", entries)
	}

	if err := store.RemoveEntry(101); err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}
	entries, _ = store.ListCollection()
	if len(entries) != 0 {
		t.Fatalf("expected empty collection after removal, got %#v", entries)
	}
}

func TestRemoveMissingEntry(t *testing.T) {
	store := openMemStore(t)
	if err := store.RemoveEntry(42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddEntryValidatesRating(t *testing.T) {
	store := openMemStore(t)
	err := store.AddEntry(domain.CollectionEntry{ID: 7, Rating: 6})
	if !errors.Is(err, domain.ErrInvalidRating) {
		t.Errorf("expected ErrInvalidRating, got %v", err)
	}
}

func TestUpdatePreservesUntouchedFields(t *testing.T) {
	store := openMemStore(t)
	if err := store.AddEntry(domain.CollectionEntry{ID: 101, Rating: 2, Review: "solid pressing"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	rating := 4
	if err := store.UpdateEntry(101, domain.EntryUpdate{Rating: &rating}); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	entries, _ := store.ListCollection()
	if entries[0].Rating != 4 {
		t.Errorf("rating not updated: %#v", entries[0])
	}
	if entries[0].Review != "solid pressing" {
		t.Errorf("review must survive a rating-only update: %#v", entries[0])
	}

	review := "warped copy, replaced"
	if err := store.UpdateEntry(101, domain.EntryUpdate{Review: &review}); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	entries, _ = store.ListCollection()
	if entries[0].Rating != 4 || entries[0].Review != review {
		t.Errorf("unexpected entry after review update: %#v", entries[0])
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	store := openMemStore(t)
	rating := 3
	err := store.UpdateEntry(999, domain.EntryUpdate{Rating: &rating})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoredOrderIsPreserved(t *testing.T) {
	store := openMemStore(t)
	for _, id := range []int{5, 3, 9, 1} {
		if err := store.AddEntry(domain.CollectionEntry{ID: id}); err != nil {
			t.Fatalf("AddEntry(%d) failed: %v", id, err)
		}
	}

	if err := store.RemoveEntry(3); err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}

	entries, _ := store.ListCollection()
	got := make([]int, len(entries))
	for i, e := range entries {
		got[i] = e.ID
	}
	want := []int{5, 9, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("insertion order not preserved: got %v, want %v", got, want)
		}
	}
}

func TestWishlistSetSemantics(t *testing.T) {
	store := openMemStore(t)

	if err := store.AddWishlistEntry(300); err != nil {
		t.Fatalf("AddWishlistEntry failed: %v", err)
	}
	// Idempotent add: no duplicates.
	if err := store.AddWishlistEntry(300); err != nil {
		t.Fatalf("repeated AddWishlistEntry failed: %v", err)
	}

	wishlist, _ := store.ListWishlist()
	if len(wishlist) != 1 || wishlist[0].ID != 300 {
		t.Fatalf("unexpected wishlist state: %#v", wishlist)
	}

	if err := store.RemoveWishlistEntry(300); err != nil {
		t.Fatalf("RemoveWishlistEntry failed: %v", err)
	}
	if err := store.RemoveWishlistEntry(300); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second removal, got %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wax.db")

	store, err := collection.Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.AddEntry(domain.CollectionEntry{ID: 101, Rating: 5, Review: "great"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := store.AddWishlistEntry(202); err != nil {
		t.Fatalf("AddWishlistEntry failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := collection.Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, _ := reopened.ListCollection()
	if len(entries) != 1 || entries[0].Review != "great" {
		t.Fatalf("collection not persisted: %#v", entries)
	}
	wishlist, _ := reopened.ListWishlist()
	if len(wishlist) != 1 || wishlist[0].ID != 202 {
		t.Fatalf("wishlist not persisted: %#v", wishlist)
	}
}

func TestCorruptBlobDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wax.db")

	store, err := collection.Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.AddEntry(domain.CollectionEntry{ID: 101}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	store.Close()

	// Corrupt the stored blob out-of-band.
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		t.Fatalf("bolt open failed: %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("collection")).Put([]byte("list"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupting blob failed: %v", err)
	}
	db.Close()

	reopened, err := collection.Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.ListCollection()
	if err != nil {
		t.Fatalf("ListCollection must not fail on corrupt data: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("corrupt blob must read as empty, got %#v", entries)
	}

	// The store must remain usable after corruption.
	if err := reopened.AddEntry(domain.CollectionEntry{ID: 7}); err != nil {
		t.Fatalf("AddEntry after corruption failed: %v", err)
	}
}
