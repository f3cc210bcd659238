package console

import (
	"context"
	"errors"
	"testing"

	"github.com/MatheusHenriqueCIN/lovefi/internal/client"
	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

type mockService struct {
	videos        []domain.Video
	err           error
	moodCalls     int
	surpriseCalls int
	gotMood       string
}

func (m *mockService) MusicByMood(ctx context.Context, moodText string) ([]domain.Video, error) {
	m.moodCalls++
	m.gotMood = moodText
	if m.err != nil {
		return nil, m.err
	}
	return m.videos, nil
}

func (m *mockService) SurpriseMe(ctx context.Context) ([]domain.Video, error) {
	m.surpriseCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.videos, nil
}

func sampleVideos(n int) []domain.Video {
	videos := make([]domain.Video, n)
	for i := range videos {
		videos[i] = domain.Video{ID: string(rune('a' + i))}
	}
	return videos
}

func TestConsole_Submit(t *testing.T) {
	t.Run("Success: results replaced, cursor reset", func(t *testing.T) {
		svc := &mockService{videos: sampleVideos(3)}
		c := New(svc)
		c.SetMoodText("estou cansado depois do trabalho")

		c.Submit(context.Background())

		if c.Phase() != PhaseReady {
			t.Fatalf("phase = %v, want PhaseReady", c.Phase())
		}
		if svc.gotMood != "estou cansado depois do trabalho" {
			t.Errorf("service got mood %q", svc.gotMood)
		}
		if c.Cursor() != 0 {
			t.Errorf("cursor = %d, want 0", c.Cursor())
		}
		if cur, ok := c.Current(); !ok || cur.ID != "a" {
			t.Errorf("current = %+v ok=%v, want first item", cur, ok)
		}
	})

	t.Run("Blank text: no call", func(t *testing.T) {
		svc := &mockService{videos: sampleVideos(1)}
		c := New(svc)
		c.SetMoodText("   \t")

		if c.CanSubmit() {
			t.Error("CanSubmit must be false for blank text")
		}
		c.Submit(context.Background())
		if svc.moodCalls != 0 {
			t.Errorf("service called %d times, want 0", svc.moodCalls)
		}
		if c.Phase() != PhaseIdle {
			t.Errorf("phase = %v, want PhaseIdle", c.Phase())
		}
	})

	t.Run("Failure: error surfaced, results empty", func(t *testing.T) {
		svc := &mockService{err: &client.APIError{StatusCode: 500, Message: "Erro interno do servidor ao buscar músicas."}}
		c := New(svc)
		c.SetMoodText("triste")

		c.Submit(context.Background())

		if c.Phase() != PhaseFailed {
			t.Fatalf("phase = %v, want PhaseFailed", c.Phase())
		}
		if c.ErrMessage() != "Erro interno do servidor ao buscar músicas." {
			t.Errorf("error message = %q", c.ErrMessage())
		}
		if len(c.Videos()) != 0 {
			t.Errorf("videos must stay empty on failure, got %d", len(c.Videos()))
		}
	})

	t.Run("Transport failure: generic fallback", func(t *testing.T) {
		svc := &mockService{err: errors.New("dial tcp: connection refused")}
		c := New(svc)
		c.SetMoodText("feliz")

		c.Submit(context.Background())

		if c.ErrMessage() != genericFailure {
			t.Errorf("error message = %q, want generic fallback", c.ErrMessage())
		}
	})

	t.Run("New search clears a prior failure", func(t *testing.T) {
		svc := &mockService{err: errors.New("boom")}
		c := New(svc)
		c.SetMoodText("feliz")
		c.Submit(context.Background())
		if c.Phase() != PhaseFailed {
			t.Fatal("setup: expected failure")
		}

		svc.err = nil
		svc.videos = sampleVideos(2)
		c.Submit(context.Background())

		if c.Phase() != PhaseReady || c.ErrMessage() != "" {
			t.Errorf("phase=%v err=%q, want clean ready state", c.Phase(), c.ErrMessage())
		}
		if len(c.Videos()) != 2 {
			t.Errorf("videos = %d, want 2", len(c.Videos()))
		}
	})
}

func TestConsole_Surprise(t *testing.T) {
	svc := &mockService{videos: sampleVideos(2)}
	c := New(svc)
	// No mood text needed.

	if !c.CanSurprise() {
		t.Fatal("CanSurprise must hold with empty text")
	}
	c.Surprise(context.Background())

	if svc.surpriseCalls != 1 {
		t.Errorf("surprise calls = %d, want 1", svc.surpriseCalls)
	}
	if c.Phase() != PhaseReady || c.Cursor() != 0 {
		t.Errorf("phase=%v cursor=%d, want ready at 0", c.Phase(), c.Cursor())
	}
}

func TestConsole_CarouselWrap(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		svc := &mockService{videos: sampleVideos(n)}
		c := New(svc)
		c.SetMoodText("qualquer")
		c.Submit(context.Background())

		// next(prev(i)) == i and prev(next(i)) == i for every cursor.
		for i := 0; i < n; i++ {
			before := c.Cursor()
			c.Next()
			c.Prev()
			if c.Cursor() != before {
				t.Errorf("n=%d: prev(next(%d)) = %d", n, before, c.Cursor())
			}
			c.Prev()
			c.Next()
			if c.Cursor() != before {
				t.Errorf("n=%d: next(prev(%d)) = %d", n, before, c.Cursor())
			}
			c.Next()
		}

		// Full forward loop returns to 0.
		for i := 0; i < n; i++ {
			c.Next()
		}
		if c.Cursor() != 0 {
			t.Errorf("n=%d: full loop ended at %d", n, c.Cursor())
		}

		// Backward wrap from 0 lands on the last index.
		c.Prev()
		if c.Cursor() != n-1 {
			t.Errorf("n=%d: prev from 0 = %d, want %d", n, c.Cursor(), n-1)
		}
	}
}

func TestConsole_CarouselEmptyList(t *testing.T) {
	c := New(&mockService{videos: nil})
	c.SetMoodText("raro")
	c.Submit(context.Background())

	if c.Phase() != PhaseReady {
		t.Fatalf("empty results are a valid state, phase = %v", c.Phase())
	}
	c.Next()
	c.Prev()
	if _, ok := c.Current(); ok {
		t.Error("Current must report no item for an empty list")
	}
	if c.Cursor() != 0 {
		t.Errorf("cursor moved on empty list: %d", c.Cursor())
	}
}
