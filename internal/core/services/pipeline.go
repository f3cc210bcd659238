package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
	"github.com/MatheusHenriqueCIN/lovefi/internal/core/ports"
)

// Pipeline coordinates query synthesis and video lookup. Each operation is
// a strictly sequential two-step run; the search never starts if synthesis
// fails, and nothing is retried or cached.
type Pipeline struct {
	synth  ports.QuerySynthesizer
	search ports.VideoSearcher
}

// NewPipeline constructs a Pipeline.
func NewPipeline(synth ports.QuerySynthesizer, search ports.VideoSearcher) *Pipeline {
	return &Pipeline{
		synth:  synth,
		search: search,
	}
}

// MusicForMood validates the mood text, synthesizes a search phrase from it
// and returns the matching videos in platform order.
func (p *Pipeline) MusicForMood(ctx context.Context, moodText string) ([]domain.Video, error) {
	if strings.TrimSpace(moodText) == "" {
		return nil, domain.ErrMoodRequired
	}

	runID := uuid.NewString()

	query, err := p.synth.QueryForMood(ctx, moodText)
	if err != nil {
		return nil, fmt.Errorf("service: synthesize query: %w", err)
	}
	log.Printf("INFO pipeline %s: mood query %q", runID, query)

	videos, err := p.search.SearchVideos(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: search videos: %w", err)
	}
	log.Printf("INFO pipeline %s: %d videos", runID, len(videos))

	return videos, nil
}

// SurpriseMe synthesizes a search phrase for an invented mood and returns
// the matching videos.
func (p *Pipeline) SurpriseMe(ctx context.Context) ([]domain.Video, error) {
	runID := uuid.NewString()

	query, err := p.synth.RandomQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: synthesize random query: %w", err)
	}
	log.Printf("INFO pipeline %s: surprise query %q", runID, query)

	videos, err := p.search.SearchVideos(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: search videos: %w", err)
	}
	log.Printf("INFO pipeline %s: %d videos", runID, len(videos))

	return videos, nil
}

// LiveStreams runs the fixed radio lookup and derives the ordered id list
// the embed player preloads as its queue.
func (p *Pipeline) LiveStreams(ctx context.Context) ([]domain.Stream, []string, error) {
	streams, err := p.search.SearchLiveStreams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("service: search live streams: %w", err)
	}

	ids := make([]string, len(streams))
	for i, s := range streams {
		ids[i] = s.ID
	}

	return streams, ids, nil
}
