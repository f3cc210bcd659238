package radio

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

type mockStreams struct {
	streams []domain.Stream
	err     error
	calls   int
}

func (m *mockStreams) LiveStreams(ctx context.Context) ([]domain.Stream, []string, error) {
	m.calls++
	if m.err != nil {
		return nil, nil, m.err
	}
	ids := make([]string, len(m.streams))
	for i, s := range m.streams {
		ids[i] = s.ID
	}
	return m.streams, ids, nil
}

// fakePlayer records every command, standing in for the embed runtime.
type fakePlayer struct {
	commands []string
	loaded   string
	volume   int
}

func (p *fakePlayer) Load(id string) {
	p.loaded = id
	p.commands = append(p.commands, "load:"+id)
}

func (p *fakePlayer) Play() { p.commands = append(p.commands, "play") }

func (p *fakePlayer) Pause() { p.commands = append(p.commands, "pause") }

func (p *fakePlayer) SetVolume(v int) {
	p.volume = v
	p.commands = append(p.commands, fmt.Sprintf("volume:%d", v))
}

func threeStreams() []domain.Stream {
	return []domain.Stream{
		{ID: "s1", Title: "radio um"},
		{ID: "s2", Title: "radio dois"},
		{ID: "s3", Title: "radio três"},
	}
}

func mountedWidget(t *testing.T) (*Widget, *fakePlayer) {
	t.Helper()
	player := &fakePlayer{}
	w := NewWidget(&mockStreams{streams: threeStreams()}, player)
	w.Mount(context.Background())
	return w, player
}

func TestWidget_Mount(t *testing.T) {
	t.Run("Success: loads first stream, applies volume, starts playback", func(t *testing.T) {
		w, player := mountedWidget(t)

		if w.Loading() {
			t.Error("loading must clear after mount")
		}
		if player.loaded != "s1" {
			t.Errorf("player loaded %q, want s1", player.loaded)
		}
		if player.volume != initialVolume {
			t.Errorf("player volume %d, want %d", player.volume, initialVolume)
		}
		if !w.Playing() {
			t.Error("widget starts in the playing state")
		}
		want := []string{"load:s1", "volume:50", "play"}
		for i, cmd := range want {
			if i >= len(player.commands) || player.commands[i] != cmd {
				t.Fatalf("commands = %v, want prefix %v", player.commands, want)
			}
		}
		if got := w.Queue(); len(got) != 3 || got[0] != "s1" || got[2] != "s3" {
			t.Errorf("queue = %v", got)
		}
	})

	t.Run("Repeated mounts do not refetch", func(t *testing.T) {
		svc := &mockStreams{streams: threeStreams()}
		w := NewWidget(svc, &fakePlayer{})
		w.Mount(context.Background())
		w.Mount(context.Background())

		if svc.calls != 1 {
			t.Errorf("fetch calls = %d, want 1", svc.calls)
		}
	})

	t.Run("Fetch failure degrades silently", func(t *testing.T) {
		player := &fakePlayer{}
		w := NewWidget(&mockStreams{err: errors.New("network down")}, player)
		w.Mount(context.Background())

		if w.Loading() {
			t.Error("loading must clear even on failure")
		}
		if len(w.Streams()) != 0 {
			t.Errorf("streams must stay empty, got %d", len(w.Streams()))
		}
		if len(player.commands) != 0 {
			t.Errorf("player must stay untouched, got %v", player.commands)
		}
		// Controls become no-ops, not panics.
		w.Next()
		w.Prev()
		if _, ok := w.Current(); ok {
			t.Error("Current must report no stream")
		}
	})

	t.Run("Empty stream list is a valid displayable state", func(t *testing.T) {
		player := &fakePlayer{}
		w := NewWidget(&mockStreams{streams: nil}, player)
		w.Mount(context.Background())

		if w.Loading() {
			t.Error("loading must clear")
		}
		if len(player.commands) != 0 {
			t.Errorf("no streams, no player commands, got %v", player.commands)
		}
	})
}

func TestWidget_TogglePlay(t *testing.T) {
	w, player := mountedWidget(t)

	w.TogglePlay()
	if w.Playing() {
		t.Error("first toggle must pause")
	}
	if player.commands[len(player.commands)-1] != "pause" {
		t.Errorf("last command = %q, want pause", player.commands[len(player.commands)-1])
	}

	w.TogglePlay()
	if !w.Playing() {
		t.Error("second toggle must resume")
	}
	if player.commands[len(player.commands)-1] != "play" {
		t.Errorf("last command = %q, want play", player.commands[len(player.commands)-1])
	}
}

func TestWidget_Volume(t *testing.T) {
	w, player := mountedWidget(t)

	for _, v := range []int{0, 1, 50, 99, 100} {
		w.SetVolume(v)
		if w.Volume() != v {
			t.Errorf("Volume() = %d after SetVolume(%d)", w.Volume(), v)
		}
		if player.volume != v {
			t.Errorf("player volume %d, want %d; state and player must stay in sync", player.volume, v)
		}
	}

	// Out-of-range values are not reachable.
	w.SetVolume(-10)
	if w.Volume() != 0 || player.volume != 0 {
		t.Errorf("volume below range: widget=%d player=%d, want 0", w.Volume(), player.volume)
	}
	w.SetVolume(250)
	if w.Volume() != 100 || player.volume != 100 {
		t.Errorf("volume above range: widget=%d player=%d, want 100", w.Volume(), player.volume)
	}
}

func TestWidget_NextPrev(t *testing.T) {
	w, player := mountedWidget(t)

	w.Next()
	if cur, _ := w.Current(); cur.ID != "s2" {
		t.Errorf("after Next: current %q, want s2", cur.ID)
	}
	if player.loaded != "s2" {
		t.Errorf("Next must load the new stream, player has %q", player.loaded)
	}

	w.Next()
	w.Next()
	if cur, _ := w.Current(); cur.ID != "s1" {
		t.Errorf("forward wrap: current %q, want s1", cur.ID)
	}

	w.Prev()
	if cur, _ := w.Current(); cur.ID != "s3" {
		t.Errorf("backward wrap from 0: current %q, want s3", cur.ID)
	}
	if player.loaded != "s3" {
		t.Errorf("Prev must load the new stream, player has %q", player.loaded)
	}

	// Inverse property on every index.
	for i := 0; i < 3; i++ {
		before, _ := w.Current()
		w.Next()
		w.Prev()
		after, _ := w.Current()
		if before.ID != after.ID {
			t.Errorf("prev(next(%s)) = %s", before.ID, after.ID)
		}
		w.Next()
	}
}
