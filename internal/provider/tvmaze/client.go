package tvmaze

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
	// DefaultBaseURL is the public TVMaze API endpoint
	DefaultBaseURL = "https://api.tvmaze.com"

	defaultTimeout = 10 * time.Second
	resultLimit    = 5
)

// Client looks up TV shows via the TVMaze search API. Anonymous GET, no auth.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a TVMaze show search client. An empty baseURL uses the
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

// searchHit is one element of the /search/shows response array
type searchHit struct {
	Score float64 `json:"score"`
	Show  show    `json:"show"`
}

type show struct {
	Name      string     `json:"name"`
	Premiered string     `json:"premiered"`
	Image     *showImage `json:"image"`
}

type showImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Search queries the show catalog for term, taking the first 5 results in
// provider order.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	reqURL := fmt.Sprintf("%s/search/shows?%s", c.baseURL, params.Encode())
	c.logger.Debug("tvmaze request", "url", reqURL)

	var hits []searchHit
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
				return retry.Unrecoverable(fmt.Errorf("tvmaze returned status %d", resp.StatusCode))
			}

			hits = nil
			if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decoding tvmaze response: %w", err))
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

	if len(hits) > resultLimit {
		hits = hits[:resultLimit]
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, mapShow(h.Show))
	}
	return results, nil
}

// mapShow converts a TVMaze show to a search result, preferring the medium
// image size over the original.
func mapShow(s show) domain.SearchResult {
	var poster string
	if s.Image != nil {
		poster = s.Image.Medium
		if poster == "" {
			poster = s.Image.Original
		}
	}
	return domain.SearchResult{
		Title:  s.Name,
		Type:   domain.MediaTypeTV,
		Poster: poster,
		Year:   yearOf(s.Premiered),
	}
}

// yearOf extracts the 4-digit year from an ISO-style date string
func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
