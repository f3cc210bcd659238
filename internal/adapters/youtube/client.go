// Package youtube provides an adapter for the YouTube Data API search
// endpoint. It maps raw search items to the normalized domain shapes used
// by the carousel and the ambient radio.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
	"github.com/MatheusHenriqueCIN/lovefi/internal/core/ports"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Topic and category filters keep results inside the music genre.
const (
	musicTopicID    = "/m/0glk9"
	musicCategoryID = "10"
)

const liveStreamQuery = "lofi hip hop radio live stream"

const (
	moodMaxResults = 5
	liveMaxResults = 6
)

// Client is an HTTP client for the YouTube adapter.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.VideoSearcher = (*Client)(nil)

// NewClient constructs a new YouTube search client. An empty baseURL
// targets the public API.
func NewClient(apiKey, baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchVideos runs a mood/surprise search: embeddable music videos only,
// Portuguese-leaning results, capped at five items.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]domain.Video, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(moodMaxResults))
	params.Set("topicId", musicTopicID)
	params.Set("relevanceLanguage", "pt")

	items, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	return mapVideosToDomain(items), nil
}

// SearchLiveStreams runs the fixed radio lookup: currently-live embeddable
// music broadcasts, capped at six items.
func (c *Client) SearchLiveStreams(ctx context.Context) ([]domain.Stream, error) {
	params := url.Values{}
	params.Set("q", liveStreamQuery)
	params.Set("eventType", "live")
	params.Set("videoCategoryId", musicCategoryID)
	params.Set("maxResults", strconv.Itoa(liveMaxResults))

	items, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	return mapStreamsToDomain(items), nil
}

func (c *Client) search(ctx context.Context, params url.Values) ([]searchItem, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: invalid search url: %w", err)
	}

	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoEmbeddable", "true")
	params.Set("key", c.apiKey)
	searchURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube adapter: search status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("youtube adapter: decode response: %w", err)
	}

	return body.Items, nil
}
