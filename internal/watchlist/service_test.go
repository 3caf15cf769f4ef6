package watchlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/watchlist/internal/adapter"
	"github.com/mmcdole/watchlist/internal/domain"
)

// stubStore is an in-memory domain.Store with controllable failure modes
type stubStore struct {
	items    []domain.WatchlistItem
	written  bool
	readErr  error
	saveErr  error
	saveHits int
}

func (s *stubStore) GetItems() ([]domain.WatchlistItem, bool, error) {
	if s.readErr != nil {
		return nil, false, s.readErr
	}
	if !s.written {
		return nil, false, nil
	}
	return append([]domain.WatchlistItem(nil), s.items...), true, nil
}

func (s *stubStore) SaveItems(items []domain.WatchlistItem) error {
	s.saveHits++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = append([]domain.WatchlistItem(nil), items...)
	s.written = true
	return nil
}

func (s *stubStore) Close() error { return nil }

func newTestService(t *testing.T) (*Service, *stubStore) {
	t.Helper()
	st := &stubStore{}
	svc := NewService(st, adapter.NullLogger())
	svc.Load()
	return svc, st
}

func TestLoadSeedsWhenNeverWritten(t *testing.T) {
	svc, _ := newTestService(t)

	require.Equal(t, 12, svc.Len())
	assert.Len(t, svc.ByCategory(domain.CategoryWatched), 3)
	assert.Len(t, svc.ByCategory(domain.CategoryWatching), 3)
	assert.Len(t, svc.ByCategory(domain.CategoryPlanning), 3)
	assert.Len(t, svc.ByCategory(domain.CategoryDropped), 3)
}

func TestLoadSeedsOnCorruptSlot(t *testing.T) {
	st := &stubStore{readErr: errors.New("corrupt watchlist data")}
	svc := NewService(st, adapter.NullLogger())
	svc.Load()

	assert.Equal(t, 12, svc.Len())
}

func TestLoadKeepsPersistedEmptyList(t *testing.T) {
	st := &stubStore{written: true, items: []domain.WatchlistItem{}}
	svc := NewService(st, adapter.NullLogger())
	svc.Load()

	assert.Equal(t, 0, svc.Len(), "a persisted empty list must not be re-seeded")
}

func TestLoadUsesPersistedItems(t *testing.T) {
	st := &stubStore{written: true, items: []domain.WatchlistItem{
		{ID: "x1", Title: "Heat", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched, Score: 9},
	}}
	svc := NewService(st, adapter.NullLogger())
	svc.Load()

	require.Equal(t, 1, svc.Len())
	item, ok := svc.Get("x1")
	require.True(t, ok)
	assert.Equal(t, "Heat", item.Title)
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	svc, st := newTestService(t)

	entry := domain.NewEntry{
		Title:    "Blade Runner",
		Type:     domain.MediaTypeMovie,
		Poster:   "https://example.com/poster.jpg",
		Category: domain.CategoryPlanning,
	}

	first, err := svc.Add(entry)
	require.NoError(t, err)
	second, err := svc.Add(entry)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 14, svc.Len())
	assert.Equal(t, 2, st.saveHits)

	// New items append to the end of their category
	planning := svc.ByCategory(domain.CategoryPlanning)
	require.Len(t, planning, 5)
	assert.Equal(t, first.ID, planning[3].ID)
	assert.Equal(t, second.ID, planning[4].ID)
}

func TestAddRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.NewEntry
		wantErr error
	}{
		{
			name:    "score above maximum",
			entry:   domain.NewEntry{Title: "x", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched, Score: 11},
			wantErr: domain.ErrInvalidScore,
		},
		{
			name:    "negative score",
			entry:   domain.NewEntry{Title: "x", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched, Score: -1},
			wantErr: domain.ErrInvalidScore,
		},
		{
			name:    "unknown category",
			entry:   domain.NewEntry{Title: "x", Type: domain.MediaTypeMovie, Category: "backlog"},
			wantErr: domain.ErrInvalidCategory,
		},
		{
			name:    "unknown media type",
			entry:   domain.NewEntry{Title: "x", Type: "podcast", Category: domain.CategoryWatched},
			wantErr: domain.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			_, err := svc.Add(tt.entry)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 12, svc.Len(), "rejected entry must not be added")
		})
	}
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService(t)

	score := 7
	updated, err := svc.Update("7", domain.ItemUpdate{Score: &score})
	require.NoError(t, err)

	assert.Equal(t, 7, updated.Score)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, domain.CategoryPlanning, updated.Category)
	assert.Equal(t, "Heard great things", updated.Notes)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, st := newTestService(t)
	before := st.saveHits

	title := "nope"
	_, err := svc.Update("missing", domain.ItemUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, before, st.saveHits, "failed update must not persist")
}

func TestUpdateRejectsOutOfRangeScore(t *testing.T) {
	svc, _ := newTestService(t)

	score := 15
	_, err := svc.Update("1", domain.ItemUpdate{Score: &score})
	require.ErrorIs(t, err, domain.ErrInvalidScore)

	item, ok := svc.Get("1")
	require.True(t, ok)
	assert.Equal(t, 9, item.Score, "item must keep its prior score")
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Delete("5"))
	assert.Equal(t, 11, svc.Len())
	_, ok := svc.Get("5")
	assert.False(t, ok)

	// Deleting again reports not found without touching the list
	err := svc.Delete("5")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, 11, svc.Len())
}

func TestMovePreservesRelativeOrder(t *testing.T) {
	svc, _ := newTestService(t)

	// Move Breaking Bad (first of three watching items) to watched
	moved, err := svc.Move("4", domain.CategoryWatched)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWatched, moved.Category)

	watching := svc.ByCategory(domain.CategoryWatching)
	require.Len(t, watching, 2)
	assert.Equal(t, "5", watching[0].ID)
	assert.Equal(t, "6", watching[1].ID)

	// The moved item keeps its list position, so it sorts between the
	// original watched items and nothing re-shuffles
	watched := svc.ByCategory(domain.CategoryWatched)
	require.Len(t, watched, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(watched))
}

func TestMoveRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	before := svc.ExportAll()
	_, err := svc.Move("4", domain.CategoryWatched)
	require.NoError(t, err)
	_, err = svc.Move("4", domain.CategoryWatching)
	require.NoError(t, err)

	assert.Equal(t, before, svc.ExportAll(), "moving there and back must restore the exact list")
}

func TestImportExportRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	snapshot := svc.ExportAll()
	require.NoError(t, svc.ImportAll(snapshot))
	assert.Equal(t, snapshot, svc.ExportAll())
}

func TestImportRejectsWholesale(t *testing.T) {
	svc, st := newTestService(t)
	before := svc.ExportAll()
	saves := st.saveHits

	incoming := []domain.WatchlistItem{
		{ID: "a", Title: "ok", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched, Score: 8},
		{ID: "b", Title: "bad score", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched, Score: 15},
	}

	err := svc.ImportAll(incoming)
	require.ErrorIs(t, err, domain.ErrInvalidScore)
	assert.Equal(t, before, svc.ExportAll(), "rejected import must leave the list untouched")
	assert.Equal(t, saves, st.saveHits)
}

func TestImportRejectsMissingAndDuplicateIDs(t *testing.T) {
	svc, _ := newTestService(t)

	missing := []domain.WatchlistItem{
		{Title: "no id", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched},
	}
	assert.ErrorIs(t, svc.ImportAll(missing), domain.ErrInvalidImport)

	dupes := []domain.WatchlistItem{
		{ID: "same", Title: "one", Type: domain.MediaTypeMovie, Category: domain.CategoryWatched},
		{ID: "same", Title: "two", Type: domain.MediaTypeTV, Category: domain.CategoryDropped},
	}
	assert.ErrorIs(t, svc.ImportAll(dupes), domain.ErrInvalidImport)

	assert.Equal(t, 12, svc.Len())
}

func TestImportEmptyListIsValid(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.ImportAll([]domain.WatchlistItem{}))
	assert.Equal(t, 0, svc.Len())
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	st := &stubStore{}
	svc := NewService(st, adapter.NullLogger())
	svc.Load()
	st.saveErr = errors.New("disk full")

	item, err := svc.Add(domain.NewEntry{
		Title: "Tenet", Type: domain.MediaTypeMovie, Category: domain.CategoryPlanning,
	})

	var warn *domain.PersistWarning
	require.ErrorAs(t, err, &warn)
	assert.Equal(t, 13, svc.Len(), "persist failure must not roll back the mutation")
	_, ok := svc.Get(item.ID)
	assert.True(t, ok)
}

func TestByCategoryIsASnapshot(t *testing.T) {
	svc, _ := newTestService(t)

	watched := svc.ByCategory(domain.CategoryWatched)
	require.NotEmpty(t, watched)
	watched[0].Title = "mutated"

	item, ok := svc.Get(watched[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", item.Title)
}

func idsOf(items []domain.WatchlistItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
