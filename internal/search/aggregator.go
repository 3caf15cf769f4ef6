package search

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/mmcdole/watchlist/internal/domain"
	"github.com/sourcegraph/conc"
)

const (
	// MinQueryLen is the minimum trimmed query length that triggers lookups
	MinQueryLen = 2

	// DefaultDebounce is the quiet period before a query settles
	DefaultDebounce = 500 * time.Millisecond

	// DefaultMaxResults bounds the merged candidate set
	DefaultMaxResults = 8
)

// Aggregator turns a settled query into a bounded set of candidates from the
// movie and TV providers. Lookups fan out concurrently and each provider is
// independently fault-tolerant: a failed provider contributes an empty set
// without aborting the other or surfacing an error.
type Aggregator struct {
	movies     domain.Provider
	shows      domain.Provider
	maxResults int
	logger     *slog.Logger

	// Monotonic sequence of issued lookups; results from a superseded
	// lookup are discarded so a slow stale response can never overwrite
	// a newer one.
	seq atomic.Uint64
}

// NewAggregator creates a search aggregator over the two providers.
func NewAggregator(movies, shows domain.Provider, maxResults int, logger *slog.Logger) *Aggregator {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		movies:     movies,
		shows:      shows,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Searchable reports whether the query is long enough to trigger lookups.
func Searchable(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinQueryLen
}

// Next registers a new lookup and returns its sequence number.
func (a *Aggregator) Next() uint64 {
	return a.seq.Add(1)
}

// Stale reports whether the lookup with the given sequence number has been
// superseded by a newer one.
func (a *Aggregator) Stale(seq uint64) bool {
	return seq != a.seq.Load()
}

// Search issues both provider lookups concurrently for the settled query and
// merges the results: movies first, then shows, truncated to the configured
// maximum. It never returns an error; provider failures degrade to empty
// contributions.
func (a *Aggregator) Search(ctx context.Context, query string) []domain.SearchResult {
	if !Searchable(query) {
		return nil
	}
	query = strings.TrimSpace(query)

	var movieResults, showResults []domain.SearchResult

	var wg conc.WaitGroup
	wg.Go(func() {
		movieResults = a.lookup(ctx, a.movies, "movies", query)
	})
	wg.Go(func() {
		showResults = a.lookup(ctx, a.shows, "shows", query)
	})
	wg.Wait()

	merged := make([]domain.SearchResult, 0, len(movieResults)+len(showResults))
	merged = append(merged, movieResults...)
	merged = append(merged, showResults...)
	if len(merged) > a.maxResults {
		merged = merged[:a.maxResults]
	}

	a.logger.Debug("search complete", "query", query,
		"movies", len(movieResults), "shows", len(showResults), "merged", len(merged))
	return merged
}

// lookup queries one provider, degrading any failure to an empty result set.
func (a *Aggregator) lookup(ctx context.Context, p domain.Provider, name, query string) []domain.SearchResult {
	results, err := p.Search(ctx, query)
	if err != nil {
		a.logger.Warn("provider lookup failed", "provider", name, "query", query, "error", err)
		return nil
	}
	return results
}
