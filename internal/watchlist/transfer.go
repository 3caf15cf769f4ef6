package watchlist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmcdole/watchlist/internal/domain"
)

// ExportFileName is the default name for exported lists
const ExportFileName = "watchlist.json"

// ExportFile writes the current list to path as a pretty-printed JSON array,
// the same shape as the durable slot.
func (s *Service) ExportFile(path string) error {
	data, err := json.MarshalIndent(s.ExportAll(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ImportFile replaces the list with the contents of a user-supplied JSON
// file. A file that does not parse to a watchlist item array is rejected
// wholesale, leaving the store untouched.
func (s *Service) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var items []domain.WatchlistItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	return s.ImportAll(items)
}
