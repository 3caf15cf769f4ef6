package itunes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/watchlist/internal/adapter"
	"github.com/mmcdole/watchlist/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second, adapter.NullLogger())
}

func TestSearchMapsTracks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "inception", r.URL.Query().Get("term"))
		assert.Equal(t, "movie", r.URL.Query().Get("entity"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"resultCount": 2,
			"results": [
				{
					"trackName": "Inception",
					"artworkUrl100": "https://is1.mzstatic.com/image/100x100bb.jpg",
					"releaseDate": "2010-07-16T07:00:00Z"
				},
				{
					"trackName": "Inception: The Cobol Job",
					"artworkUrl100": "",
					"releaseDate": ""
				}
			]
		}`))
	})

	results, err := client.Search(context.Background(), "inception")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, domain.SearchResult{
		Title:  "Inception",
		Type:   domain.MediaTypeMovie,
		Poster: "https://is1.mzstatic.com/image/600x600bb.jpg",
		Year:   "2010",
	}, results[0])

	assert.Empty(t, results[1].Poster)
	assert.Empty(t, results[1].Year)
}

func TestSearchCapsResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultCount": 7, "results": [
			{"trackName": "a"}, {"trackName": "b"}, {"trackName": "c"},
			{"trackName": "d"}, {"trackName": "e"}, {"trackName": "f"},
			{"trackName": "g"}
		]}`))
	})

	results, err := client.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestSearchNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultCount": 0, "results": []}`))
	})

	results, err := client.Search(context.Background(), "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchServerError(t *testing.T) {
	var hits int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Equal(t, 1, hits, "a non-200 response must not be retried")
}

func TestSearchMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.Search(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestSearchContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"resultCount": 0, "results": []}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Search(ctx, "x")
	require.Error(t, err)
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, "2010", yearOf("2010-07-16T07:00:00Z"))
	assert.Equal(t, "1999", yearOf("1999"))
	assert.Equal(t, "", yearOf("99"))
	assert.Equal(t, "", yearOf(""))
}
