// Package client is a typed HTTP client for the lovefi API, shared by the
// mood console and the ambient radio widget.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

// genericFailure is shown when the server's error payload itself cannot be
// parsed.
const genericFailure = "Não foi possível buscar as músicas. Tente novamente."

// APIError carries the user-facing message the server returned alongside a
// non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to a running lovefi server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a Client. A nil httpClient falls back to a default with a
// sane timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type moodRequest struct {
	MoodText string `json:"moodText"`
}

type musicResponse struct {
	Videos []domain.Video `json:"videos"`
}

type liveStreamsResponse struct {
	StreamIDs     []string        `json:"streamIds"`
	StreamDetails []domain.Stream `json:"streamDetails"`
}

// MusicByMood runs the mood search pipeline.
func (c *Client) MusicByMood(ctx context.Context, moodText string) ([]domain.Video, error) {
	body, err := json.Marshal(moodRequest{MoodText: moodText})
	if err != nil {
		return nil, fmt.Errorf("client: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/get-music-by-mood", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var parsed musicResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	return parsed.Videos, nil
}

// SurpriseMe runs the random-mood pipeline.
func (c *Client) SurpriseMe(ctx context.Context) ([]domain.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/surprise-me", nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}

	var parsed musicResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	return parsed.Videos, nil
}

// LiveStreams fetches the fixed radio feed: stream details plus the derived
// id list for the player queue.
func (c *Client) LiveStreams(ctx context.Context) ([]domain.Stream, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/get-live-streams", nil)
	if err != nil {
		return nil, nil, fmt.Errorf("client: build request: %w", err)
	}

	var parsed liveStreamsResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, nil, err
	}
	return parsed.StreamDetails, parsed.StreamIDs, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: serverErrorMessage(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

// serverErrorMessage surfaces whatever error string the server provided, or
// the generic fallback when the body is not the expected shape.
func serverErrorMessage(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return genericFailure
}
