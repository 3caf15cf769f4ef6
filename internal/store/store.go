package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/watchlist/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketWatchlist = []byte("watchlist")

const keyItems = "items"

// WatchlistStore implements domain.Store using BoltDB. The whole list lives
// under a single key as a JSON array, written whole on every mutation and
// read whole on startup. A memory-only mode (empty path) backs tests.
type WatchlistStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// Last serialized list, kept in memory so reads never hit disk twice
	cached []byte
}

// Open opens (or creates) the durable slot at path. An empty path yields a
// memory-only store with no persistence.
func Open(path string) (*WatchlistStore, error) {
	if path == "" {
		return &WatchlistStore{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWatchlist)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &WatchlistStore{db: db}, nil
}

func (s *WatchlistStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetItems reads the persisted list. ok is false when the slot has never
// been written or its contents do not parse; the parse failure is returned
// so callers can surface a hydration warning before falling back to seeds.
func (s *WatchlistStore) GetItems() ([]domain.WatchlistItem, bool, error) {
	data := s.read()
	if data == nil {
		return nil, false, nil
	}

	// Empty list is a valid persisted state, distinct from "never written"
	items := []domain.WatchlistItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("corrupt watchlist data: %w", err)
	}
	return items, true, nil
}

// SaveItems writes the full list, replacing any prior contents.
func (s *WatchlistStore) SaveItems(items []domain.WatchlistItem) error {
	if items == nil {
		items = []domain.WatchlistItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWatchlist).Put([]byte(keyItems), data)
	})
}

// read returns the raw serialized list, preferring the memory copy
func (s *WatchlistStore) read() []byte {
	s.mu.RLock()
	if s.cached != nil {
		data := s.cached
		s.mu.RUnlock()
		return data
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketWatchlist).Get([]byte(keyItems)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil
	}

	s.mu.Lock()
	s.cached = data
	s.mu.Unlock()

	return data
}
