package collection

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"wax/internal/domain"
)

// Bucket names
var (
	bucketCollection = []byte("collection")
	bucketWishlist   = []byte("wishlist")
)

// Each bucket holds the whole collection under a single key: every
// mutation is a read-modify-write of one serialized blob. Simple, and
// fine for a single-user local list; two racing mutations resolve
// last-write-wins.
var keyList = []byte("list")

// Store implements domain.CollectionStore using BoltDB.
type Store struct {
	db     *bolt.DB
	mu     sync.Mutex // serializes read-modify-write cycles in-process
	logger *slog.Logger

	// Memory-only mode when opened without a path (used by tests)
	mem map[string][]byte
}

// Open opens (or creates) the store at path. An empty path yields a
// memory-only store with no persistence.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if path == "" {
		return &Store{logger: logger, mem: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCollection, bucketWishlist} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Blob helpers ===

func (s *Store) read(bucket []byte) []byte {
	if s.db == nil {
		return s.mem[string(bucket)]
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get(keyList); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data
}

func (s *Store) write(bucket []byte, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if s.db == nil {
		s.mem[string(bucket)] = data
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put(keyList, data)
	})
}

// loadCollection deserializes the collection blob. An absent key is an
// empty collection; a corrupt blob degrades to empty instead of
// bricking the app on bad local state.
func (s *Store) loadCollection() []domain.CollectionEntry {
	data := s.read(bucketCollection)
	if len(data) == 0 {
		return nil
	}
	var entries []domain.CollectionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("corrupt collection data, treating as empty", "error", err)
		return nil
	}
	return entries
}

func (s *Store) loadWishlist() []domain.WishlistEntry {
	data := s.read(bucketWishlist)
	if len(data) == 0 {
		return nil
	}
	var entries []domain.WishlistEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("corrupt wishlist data, treating as empty", "error", err)
		return nil
	}
	return entries
}

// === Collection ===

func (s *Store) ListCollection() ([]domain.CollectionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCollection(), nil
}

func (s *Store) AddEntry(entry domain.CollectionEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadCollection()
	for _, existing := range entries {
		if existing.ID == entry.ID {
			return fmt.Errorf("%w: release %d", domain.ErrDuplicateEntry, entry.ID)
		}
	}

	entries = append(entries, entry)
	if err := s.write(bucketCollection, entries); err != nil {
		return err
	}

	s.logger.Debug("added collection entry", "id", entry.ID, "rating", entry.Rating)
	return nil
}

func (s *Store) RemoveEntry(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadCollection()
	idx := -1
	for i, entry := range entries {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: release %d", domain.ErrNotFound, id)
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := s.write(bucketCollection, entries); err != nil {
		return err
	}

	s.logger.Debug("removed collection entry", "id", id)
	return nil
}

func (s *Store) UpdateEntry(id int, update domain.EntryUpdate) error {
	if update.Rating != nil && (*update.Rating < 0 || *update.Rating > domain.MaxRating) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidRating, *update.Rating)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadCollection()
	idx := -1
	for i, entry := range entries {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: release %d", domain.ErrNotFound, id)
	}

	if update.Rating != nil {
		entries[idx].Rating = *update.Rating
	}
	if update.Review != nil {
		entries[idx].Review = *update.Review
	}

	if err := s.write(bucketCollection, entries); err != nil {
		return err
	}

	s.logger.Debug("updated collection entry", "id", id)
	return nil
}

// === Wishlist ===

func (s *Store) ListWishlist() ([]domain.WishlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadWishlist(), nil
}

func (s *Store) AddWishlistEntry(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidReleaseID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadWishlist()
	for _, existing := range entries {
		if existing.ID == id {
			return nil // set semantics: already present
		}
	}

	entries = append(entries, domain.WishlistEntry{ID: id})
	if err := s.write(bucketWishlist, entries); err != nil {
		return err
	}

	s.logger.Debug("added wishlist entry", "id", id)
	return nil
}

func (s *Store) RemoveWishlistEntry(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadWishlist()
	idx := -1
	for i, entry := range entries {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: release %d", domain.ErrNotFound, id)
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := s.write(bucketWishlist, entries); err != nil {
		return err
	}

	s.logger.Debug("removed wishlist entry", "id", id)
	return nil
}
