package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/mmcdole/watchlist/internal/domain"
)

const (
	// DefaultBaseURL is the public iTunes Search API endpoint
	DefaultBaseURL = "https://itunes.apple.com"

	defaultTimeout = 10 * time.Second
	resultLimit    = 5
)

// Client looks up movies via the iTunes Search API. Anonymous GET, no auth.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an iTunes movie search client. An empty baseURL uses the
// public endpoint; tests point it at a local server.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// searchResponse is the iTunes Search API envelope
type searchResponse struct {
	ResultCount int     `json:"resultCount"`
	Results     []track `json:"results"`
}

// track is one iTunes search result
type track struct {
	TrackName     string `json:"trackName"`
	ArtworkURL100 string `json:"artworkUrl100"`
	ReleaseDate   string `json:"releaseDate"`
}

// Search queries the movie catalog for term, capped at 5 results.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("term", query)
	params.Set("entity", "movie")
	params.Set("limit", fmt.Sprintf("%d", resultLimit))

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	c.logger.Debug("itunes request", "url", reqURL)

	var payload searchResponse
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("itunes returned status %d", resp.StatusCode))
			}

			payload = searchResponse{}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decoding itunes response: %w", err))
			}
			return nil
		},
		retry.Attempts(2),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(payload.Results))
	for _, t := range payload.Results {
		results = append(results, mapTrack(t))
		if len(results) == resultLimit {
			break
		}
	}
	return results, nil
}

// mapTrack converts an iTunes track to a search result. Artwork is upsized
// from the 100x100 thumbnail to 600x600; the year is the leading 4 digits of
// the release date.
func mapTrack(t track) domain.SearchResult {
	return domain.SearchResult{
		Title:  t.TrackName,
		Type:   domain.MediaTypeMovie,
		Poster: strings.Replace(t.ArtworkURL100, "100x100", "600x600", 1),
		Year:   yearOf(t.ReleaseDate),
	}
}

// yearOf extracts the 4-digit year from an ISO-style date string
func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
