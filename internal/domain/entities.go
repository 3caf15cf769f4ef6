package domain

import "fmt"

// Category is one of the four lifecycle buckets an item belongs to
type Category string

const (
	CategoryWatched  Category = "watched"
	CategoryWatching Category = "currently-watching"
	CategoryPlanning Category = "planning"
	CategoryDropped  Category = "dropped"
)

// Categories lists all buckets in display order
var Categories = []Category{
	CategoryWatched,
	CategoryWatching,
	CategoryPlanning,
	CategoryDropped,
}

// Valid reports whether c is one of the four known buckets
func (c Category) Valid() bool {
	switch c {
	case CategoryWatched, CategoryWatching, CategoryPlanning, CategoryDropped:
		return true
	}
	return false
}

// Display returns a human-readable label for the category
func (c Category) Display() string {
	switch c {
	case CategoryWatched:
		return "Watched"
	case CategoryWatching:
		return "Currently Watching"
	case CategoryPlanning:
		return "Planning to Watch"
	case CategoryDropped:
		return "Dropped"
	default:
		return string(c)
	}
}

// Next returns the bucket after c in display order, wrapping around
func (c Category) Next() Category {
	for i, cat := range Categories {
		if cat == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return c
}

// Prev returns the bucket before c in display order, wrapping around
func (c Category) Prev() Category {
	for i, cat := range Categories {
		if cat == c {
			return Categories[(i+len(Categories)-1)%len(Categories)]
		}
	}
	return c
}

// MediaType distinguishes movies from TV shows
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Valid reports whether t is a known media type
func (t MediaType) Valid() bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// Display returns a human-readable label for the media type
func (t MediaType) Display() string {
	if t == MediaTypeTV {
		return "TV Show"
	}
	return "Movie"
}

// PlaceholderPoster is substituted when a provider supplies no artwork
const PlaceholderPoster = "https://via.placeholder.com/300x450/1a1a1a/ffffff?text=No+Poster"

// Score bounds. Zero means "unrated", not a real score of zero; this keeps
// exported files byte-compatible with the historical format.
const (
	MinScore = 0
	MaxScore = 10
)

// WatchlistItem is one tracked media entry. Field names on the wire match
// the durable-slot and export-file format exactly.
type WatchlistItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     MediaType `json:"type"`
	Poster   string    `json:"poster"`
	Category Category  `json:"category"`
	Score    int       `json:"score"`
	Notes    string    `json:"notes"`
}

// Rated reports whether the item carries a real score
func (w WatchlistItem) Rated() bool {
	return w.Score > MinScore
}

// Validate checks the item against the list invariants
func (w WatchlistItem) Validate() error {
	if w.Score < MinScore || w.Score > MaxScore {
		return fmt.Errorf("%w: %d", ErrInvalidScore, w.Score)
	}
	if !w.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, w.Category)
	}
	if !w.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, w.Type)
	}
	return nil
}

// SearchResult is one candidate match from a metadata provider. Ephemeral:
// produced per query and discarded on selection or on a newer query.
type SearchResult struct {
	Title  string
	Type   MediaType
	Poster string
	Year   string // 4-digit release year, empty when the provider omits it
}

// NewEntry is the normalized creation payload handed to the store's Add
// operation, either from a selected search result or a manual entry.
type NewEntry struct {
	Title    string
	Type     MediaType
	Poster   string
	Category Category
	Score    int
	Notes    string
}

// Entry converts a selected search result into a creation payload,
// substituting the placeholder poster when the provider supplied none.
func (r SearchResult) Entry(category Category) NewEntry {
	poster := r.Poster
	if poster == "" {
		poster = PlaceholderPoster
	}
	return NewEntry{
		Title:    r.Title,
		Type:     r.Type,
		Poster:   poster,
		Category: category,
	}
}

// ItemUpdate is a partial field merge for an existing item. Nil fields are
// left untouched. Type is fixed at creation and cannot be updated.
type ItemUpdate struct {
	Title    *string
	Poster   *string
	Category *Category
	Score    *int
	Notes    *string
}
