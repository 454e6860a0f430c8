package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// BaseURL is the NHL web API root.
	BaseURL = "https://api-web.nhle.com"

	// PlayerProfileURL is the public player page prefix used to derive
	// profile links from player IDs.
	PlayerProfileURL = "https://www.nhl.com/player/"

	// SiteURL prefixes relative game-center links.
	SiteURL = "https://www.nhl.com"
)

// Client handles NHL web API requests. One GET per logical query, no retry,
// no caching; a non-2xx status is a terminal failure for that call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an NHL API client with a custom base URL.
func New(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewClient creates an NHL API client with default settings.
func NewClient() *Client {
	return New(BaseURL)
}

// FetchRoster fetches a team's current roster document. The team code must
// already be canonical (upper case).
func (c *Client) FetchRoster(ctx context.Context, team string) (map[string]interface{}, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/v1/roster/%s/current", c.baseURL, team))
}

// FetchScoreboard fetches a team's current scoreboard document.
func (c *Client) FetchScoreboard(ctx context.Context, team string) (map[string]interface{}, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/v1/scoreboard/%s/now", c.baseURL, team))
}

// FetchSkaterLeaders fetches the current statistical leaders for the given
// categories. Categories and limit are forwarded verbatim to the query.
func (c *Client) FetchSkaterLeaders(ctx context.Context, categories []string, limit int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("categories", strings.Join(categories, ","))
	params.Set("limit", strconv.Itoa(limit))
	return c.fetch(ctx, fmt.Sprintf("%s/v1/skater-stats-leaders/current?%s", c.baseURL, params.Encode()))
}

// FetchPlayerLanding fetches a player's landing document.
func (c *Client) FetchPlayerLanding(ctx context.Context, playerID int) (map[string]interface{}, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/v1/player/%d/landing", c.baseURL, playerID))
}

func (c *Client) fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("NHL API returned status %d for %s", resp.StatusCode, url)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return result, nil
}
