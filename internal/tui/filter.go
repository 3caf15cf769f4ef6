package tui

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/watchlist/internal/domain"
)

// TypeFilterAll widens the media-type filter to both movies and shows
const TypeFilterAll = "all"

// visibleItems narrows a category's items to those matching the media-type
// filter and the fuzzy title filter, preserving list order.
func visibleItems(items []domain.WatchlistItem, typeFilter string, titleFilter string) []domain.WatchlistItem {
	filtered := make([]domain.WatchlistItem, 0, len(items))
	for _, item := range items {
		if typeFilter != TypeFilterAll && string(item.Type) != typeFilter {
			continue
		}
		if titleFilter != "" && !fuzzy.MatchFold(titleFilter, item.Title) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
