// Package console holds the mood console state machine: mood input, the
// search lifecycle and the result carousel. It is transport-agnostic; any
// MusicService (normally the API client) can drive it.
package console

import (
	"context"
	"errors"
	"strings"

	"github.com/MatheusHenriqueCIN/lovefi/internal/client"
	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

// genericFailure is shown when an error carries no user-facing message.
const genericFailure = "Não foi possível buscar as músicas. Tente novamente."

// MusicService is the slice of the API the console needs.
type MusicService interface {
	MusicByMood(ctx context.Context, moodText string) ([]domain.Video, error)
	SurpriseMe(ctx context.Context) ([]domain.Video, error)
}

// Phase is the explicit lifecycle variant of the console. Exactly one phase
// holds at a time, so impossible combinations (loading with a populated
// error) cannot be represented.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

// Console owns one search session: the editable mood text, the current
// result list and the carousel cursor.
type Console struct {
	svc MusicService

	moodText string
	phase    Phase
	videos   []domain.Video
	cursor   int
	errMsg   string
}

// New constructs an idle Console.
func New(svc MusicService) *Console {
	return &Console{svc: svc}
}

// SetMoodText replaces the editable mood text.
func (c *Console) SetMoodText(text string) {
	c.moodText = text
}

// MoodText returns the current editable text.
func (c *Console) MoodText() string {
	return c.moodText
}

// CanSubmit reports whether a mood search may start: never while a request
// is in flight, never with blank text.
func (c *Console) CanSubmit() bool {
	return c.phase != PhaseLoading && strings.TrimSpace(c.moodText) != ""
}

// CanSurprise reports whether a surprise search may start. Only an in-flight
// request blocks it.
func (c *Console) CanSurprise() bool {
	return c.phase != PhaseLoading
}

// Submit runs the mood search. Prior error and results are cleared up
// front; on success the results are replaced wholesale and the cursor
// resets to the first item.
func (c *Console) Submit(ctx context.Context) {
	if !c.CanSubmit() {
		return
	}
	c.run(func() ([]domain.Video, error) {
		return c.svc.MusicByMood(ctx, c.moodText)
	})
}

// Surprise runs the random-mood search with the same lifecycle as Submit.
func (c *Console) Surprise(ctx context.Context) {
	if !c.CanSurprise() {
		return
	}
	c.run(func() ([]domain.Video, error) {
		return c.svc.SurpriseMe(ctx)
	})
}

func (c *Console) run(search func() ([]domain.Video, error)) {
	c.phase = PhaseLoading
	c.errMsg = ""
	c.videos = nil
	c.cursor = 0

	videos, err := search()
	if err != nil {
		c.phase = PhaseFailed
		c.errMsg = failureMessage(err)
		return
	}

	c.phase = PhaseReady
	c.videos = videos
}

// Next advances the carousel cursor, wrapping past the last item.
func (c *Console) Next() {
	if len(c.videos) == 0 {
		return
	}
	c.cursor = (c.cursor + 1) % len(c.videos)
}

// Prev moves the carousel cursor back, wrapping before the first item.
func (c *Console) Prev() {
	if len(c.videos) == 0 {
		return
	}
	c.cursor = (c.cursor - 1 + len(c.videos)) % len(c.videos)
}

// Current returns the video under the cursor, if any.
func (c *Console) Current() (domain.Video, bool) {
	if len(c.videos) == 0 {
		return domain.Video{}, false
	}
	return c.videos[c.cursor], true
}

// Cursor returns the carousel index.
func (c *Console) Cursor() int {
	return c.cursor
}

// Videos returns the current result list.
func (c *Console) Videos() []domain.Video {
	return c.videos
}

// Phase returns the lifecycle variant.
func (c *Console) Phase() Phase {
	return c.phase
}

// ErrMessage returns the surfaced failure message, empty outside
// PhaseFailed.
func (c *Console) ErrMessage() string {
	return c.errMsg
}

// failureMessage prefers the server-provided message and falls back to the
// generic one for transport-level failures.
func failureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailure
}
