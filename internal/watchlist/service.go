package watchlist

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mmcdole/watchlist/internal/domain"
)

// Service owns the canonical ordered list of watchlist items and its durable
// mirror. All mutations go through it; views only ever see snapshots. List
// order is insertion order, and category grouping is a pure filter over it,
// so within-category relative order survives add/update/move.
type Service struct {
	store  domain.Store
	logger *slog.Logger

	mu    sync.RWMutex
	items []domain.WatchlistItem
}

// NewService creates the watchlist service. Call Load before first use.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Load hydrates the list from the durable slot. A slot that was never
// written, or whose contents do not parse, falls back to the built-in seed
// collection; hydration never fails.
func (s *Service) Load() {
	items, ok, err := s.store.GetItems()
	if err != nil {
		s.logger.Warn("failed to read persisted watchlist, using seed data", "error", err)
	}
	if !ok {
		items = Seed()
		s.logger.Info("no usable watchlist found, seeded sample data", "count", len(items))
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Add validates the entry, assigns a fresh id, appends it to the end of the
// list and persists. A persist failure is returned as a *domain.PersistWarning
// while the item stays added.
func (s *Service) Add(entry domain.NewEntry) (domain.WatchlistItem, error) {
	item := domain.WatchlistItem{
		ID:       uuid.NewString(),
		Title:    entry.Title,
		Type:     entry.Type,
		Poster:   entry.Poster,
		Category: entry.Category,
		Score:    entry.Score,
		Notes:    entry.Notes,
	}
	if err := item.Validate(); err != nil {
		return domain.WatchlistItem{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.logger.Debug("added item", "id", item.ID, "title", item.Title, "category", item.Category)
	return item, s.persist()
}

// Update merges the given fields into the item matching id and persists.
func (s *Service) Update(id string, upd domain.ItemUpdate) (domain.WatchlistItem, error) {
	if upd.Score != nil && (*upd.Score < domain.MinScore || *upd.Score > domain.MaxScore) {
		return domain.WatchlistItem{}, fmt.Errorf("%w: %d", domain.ErrInvalidScore, *upd.Score)
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return domain.WatchlistItem{}, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, *upd.Category)
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.WatchlistItem{}, domain.ErrItemNotFound
	}

	item := &s.items[idx]
	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Poster != nil {
		item.Poster = *upd.Poster
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Score != nil {
		item.Score = *upd.Score
	}
	if upd.Notes != nil {
		item.Notes = *upd.Notes
	}
	updated := *item
	s.mu.Unlock()

	return updated, s.persist()
}

// Delete removes the item matching id and persists.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrItemNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()

	s.logger.Debug("deleted item", "id", id)
	return s.persist()
}

// Move sets the category on the item matching id. Equivalent to an Update
// carrying only the category.
func (s *Service) Move(id string, category domain.Category) (domain.WatchlistItem, error) {
	return s.Update(id, domain.ItemUpdate{Category: &category})
}

// ImportAll wholesale-replaces the list. Every incoming item is validated
// first; on any invalid item the whole import is rejected and the prior list
// stays untouched.
func (s *Service) ImportAll(items []domain.WatchlistItem) error {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("item %d: %w", i, domain.ErrInvalidImport)
		}
		if seen[item.ID] {
			return fmt.Errorf("item %d: duplicate id %q: %w", i, item.ID, domain.ErrInvalidImport)
		}
		seen[item.ID] = true
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	s.mu.Lock()
	s.items = append([]domain.WatchlistItem(nil), items...)
	s.mu.Unlock()

	s.logger.Info("imported watchlist", "count", len(items))
	return s.persist()
}

// ExportAll returns a snapshot of the list, safe for serialization.
func (s *Service) ExportAll() []domain.WatchlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WatchlistItem(nil), s.items...)
}

// ByCategory returns the items in the given bucket, preserving list order.
func (s *Service) ByCategory(category domain.Category) []domain.WatchlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]domain.WatchlistItem, 0)
	for _, item := range s.items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Get returns the item matching id.
func (s *Service) Get(id string) (domain.WatchlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	return domain.WatchlistItem{}, false
}

// Len returns the number of tracked items.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// indexOf returns the position of id in the list, or -1. Callers hold s.mu.
func (s *Service) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full list to the durable slot. A write failure never
// rolls back the in-memory mutation; it is logged and handed to the caller
// as a non-fatal *domain.PersistWarning.
func (s *Service) persist() error {
	if err := s.store.SaveItems(s.ExportAll()); err != nil {
		s.logger.Warn("failed to persist watchlist", "error", err)
		return &domain.PersistWarning{Err: err}
	}
	return nil
}
