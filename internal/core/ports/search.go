package ports

import (
	"context"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

// VideoSearcher queries the video platform. Results come back in platform
// order; nothing here re-ranks them. An empty result list is valid, not an
// error.
type VideoSearcher interface {
	// SearchVideos runs a mood/surprise search with the embeddable-music
	// filters applied.
	SearchVideos(ctx context.Context, query string) ([]domain.Video, error)
	// SearchLiveStreams runs the fixed live-radio lookup.
	SearchLiveStreams(ctx context.Context) ([]domain.Stream, error)
}
