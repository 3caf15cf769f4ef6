package domain

import "context"

// Store is the durable slot: a single named local persistence location
// holding the entire serialized watchlist.
type Store interface {
	// GetItems reads the persisted list whole. ok is false when the slot is
	// empty or unreadable; err is non-nil only for the unreadable case.
	GetItems() (items []WatchlistItem, ok bool, err error)

	// SaveItems writes the full list whole, replacing any prior contents.
	SaveItems(items []WatchlistItem) error

	Close() error
}

// Provider is an external read-only metadata lookup service.
type Provider interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
