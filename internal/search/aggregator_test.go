package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/watchlist/internal/adapter"
	"github.com/mmcdole/watchlist/internal/domain"
)

// fakeProvider returns canned results or a canned error
type fakeProvider struct {
	results []domain.SearchResult
	err     error
}

func (f *fakeProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func canned(mediaType domain.MediaType, count int) []domain.SearchResult {
	results := make([]domain.SearchResult, count)
	for i := range results {
		results[i] = domain.SearchResult{
			Title: fmt.Sprintf("%s-%d", mediaType, i),
			Type:  mediaType,
		}
	}
	return results
}

func TestSearchable(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"a", false},
		{"  a  ", false},
		{"ab", true},
		{"  ab  ", true},
		{"breaking bad", true},
		{"é", false},
		{"éé", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Searchable(tt.query), "query %q", tt.query)
	}
}

func TestSearchMergesMoviesFirst(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{results: canned(domain.MediaTypeMovie, 2)},
		&fakeProvider{results: canned(domain.MediaTypeTV, 2)},
		8, adapter.NullLogger())

	results := agg.Search(context.Background(), "dune")
	require.Len(t, results, 4)
	assert.Equal(t, domain.MediaTypeMovie, results[0].Type)
	assert.Equal(t, domain.MediaTypeMovie, results[1].Type)
	assert.Equal(t, domain.MediaTypeTV, results[2].Type)
	assert.Equal(t, domain.MediaTypeTV, results[3].Type)
}

func TestSearchTruncatesToMax(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{results: canned(domain.MediaTypeMovie, 5)},
		&fakeProvider{results: canned(domain.MediaTypeTV, 5)},
		8, adapter.NullLogger())

	results := agg.Search(context.Background(), "dune")
	require.Len(t, results, 8)

	// Movies keep priority under truncation
	assert.Equal(t, domain.MediaTypeMovie, results[4].Type)
	assert.Equal(t, domain.MediaTypeTV, results[5].Type)
}

func TestSearchToleratesProviderFailure(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{err: errors.New("itunes down")},
		&fakeProvider{results: canned(domain.MediaTypeTV, 3)},
		8, adapter.NullLogger())

	results := agg.Search(context.Background(), "dune")
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, domain.MediaTypeTV, r.Type)
	}
}

func TestSearchBothProvidersFail(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{err: errors.New("down")},
		&fakeProvider{err: errors.New("down")},
		8, adapter.NullLogger())

	assert.Empty(t, agg.Search(context.Background(), "dune"))
}

func TestSearchShortQueryReturnsNil(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{results: canned(domain.MediaTypeMovie, 5)},
		&fakeProvider{results: canned(domain.MediaTypeTV, 5)},
		8, adapter.NullLogger())

	assert.Nil(t, agg.Search(context.Background(), "a"))
	assert.Nil(t, agg.Search(context.Background(), "   "))
}

func TestSearchTrimsQuery(t *testing.T) {
	var seen string
	probe := providerFunc(func(ctx context.Context, query string) ([]domain.SearchResult, error) {
		seen = query
		return nil, nil
	})

	agg := NewAggregator(probe, probe, 8, adapter.NullLogger())
	agg.Search(context.Background(), "  dune  ")
	assert.Equal(t, "dune", seen)
}

func TestSequenceGuard(t *testing.T) {
	agg := NewAggregator(&fakeProvider{}, &fakeProvider{}, 8, adapter.NullLogger())

	first := agg.Next()
	assert.False(t, agg.Stale(first))

	second := agg.Next()
	assert.True(t, agg.Stale(first), "a superseded lookup must read as stale")
	assert.False(t, agg.Stale(second))
}

// providerFunc adapts a function to domain.Provider
type providerFunc func(ctx context.Context, query string) ([]domain.SearchResult, error)

func (f providerFunc) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return f(ctx, query)
}
