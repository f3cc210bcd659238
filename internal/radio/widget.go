// Package radio holds the ambient radio widget: a persistent mini-player
// cycling through live lo-fi streams. The embed runtime is abstracted
// behind the Player capability interface so the widget logic runs (and
// tests) without it.
package radio

import (
	"context"
	"log"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

const initialVolume = 50

// Player is the capability surface of the platform embed player.
type Player interface {
	Load(id string)
	Play()
	Pause()
	SetVolume(v int)
}

// StreamService is the slice of the API the widget needs.
type StreamService interface {
	LiveStreams(ctx context.Context) ([]domain.Stream, []string, error)
}

// Widget owns the radio state for one page session: the fetched stream
// list, the current index, the play flag and the volume.
type Widget struct {
	svc    StreamService
	player Player

	streams []domain.Stream
	queue   []string
	index   int
	playing bool
	volume  int
	loading bool
	mounted bool
}

// NewWidget constructs an unmounted Widget. Playback defaults to on at
// half volume, matching the mini-player's initial controls.
func NewWidget(svc StreamService, player Player) *Widget {
	return &Widget{
		svc:     svc,
		player:  player,
		playing: true,
		volume:  initialVolume,
		loading: true,
	}
}

// Mount fetches the live streams once and binds the player to the first
// one. Repeated mounts are no-ops. A fetch failure is suppressed from the
// user: the widget ends up empty and inert, never crashed.
func (w *Widget) Mount(ctx context.Context) {
	if w.mounted {
		return
	}
	w.mounted = true

	streams, ids, err := w.svc.LiveStreams(ctx)
	w.loading = false
	if err != nil {
		log.Printf("WARN radio: live stream fetch failed: %v", err)
		return
	}

	w.streams = streams
	w.queue = ids
	if len(w.streams) == 0 {
		return
	}

	w.player.Load(w.streams[w.index].ID)
	w.player.SetVolume(w.volume)
	if w.playing {
		w.player.Play()
	}
}

// TogglePlay flips the play flag and immediately commands the player.
func (w *Widget) TogglePlay() {
	w.playing = !w.playing
	if w.playing {
		w.player.Play()
	} else {
		w.player.Pause()
	}
}

// SetVolume stores the volume and commands the player in the same step so
// the two never drift. Values are clamped to [0,100].
func (w *Widget) SetVolume(v int) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	w.volume = v
	w.player.SetVolume(v)
}

// Next advances to the following stream, wrapping past the last one, and
// explicitly loads it into the player.
func (w *Widget) Next() {
	if len(w.streams) == 0 {
		return
	}
	w.index = (w.index + 1) % len(w.streams)
	w.player.Load(w.streams[w.index].ID)
}

// Prev moves to the previous stream, wrapping before the first one.
func (w *Widget) Prev() {
	if len(w.streams) == 0 {
		return
	}
	w.index = (w.index - 1 + len(w.streams)) % len(w.streams)
	w.player.Load(w.streams[w.index].ID)
}

// Current returns the stream under the index, if any.
func (w *Widget) Current() (domain.Stream, bool) {
	if len(w.streams) == 0 {
		return domain.Stream{}, false
	}
	return w.streams[w.index], true
}

// Streams returns the fetched stream list.
func (w *Widget) Streams() []domain.Stream {
	return w.streams
}

// Queue returns the ordered id list the embed player preloads so steady
// state auto-advance needs no extra fetch.
func (w *Widget) Queue() []string {
	return w.queue
}

// Playing reports the play flag.
func (w *Widget) Playing() bool {
	return w.playing
}

// Volume returns the stored volume.
func (w *Widget) Volume() int {
	return w.volume
}

// Loading reports whether the initial fetch is still pending.
func (w *Widget) Loading() bool {
	return w.loading
}
