package youtube

import (
	"fmt"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// mapVideosToDomain converts raw search items to carousel videos. Items
// without a video id (channels leaking through the type filter, deleted
// videos) are skipped.
func mapVideosToDomain(items []searchItem) []domain.Video {
	videos := make([]domain.Video, 0, len(items))
	for _, item := range items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, domain.Video{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: bestThumbnail(item.Snippet.Thumbnails),
			URL:       fmt.Sprintf(watchURLFormat, item.ID.VideoID),
		})
	}
	return videos
}

// mapStreamsToDomain converts raw search items to live radio streams.
func mapStreamsToDomain(items []searchItem) []domain.Stream {
	streams := make([]domain.Stream, 0, len(items))
	for _, item := range items {
		if item.ID.VideoID == "" {
			continue
		}
		streams = append(streams, domain.Stream{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: bestThumbnail(item.Snippet.Thumbnails),
		})
	}
	return streams
}

// bestThumbnail prefers the high resolution and falls back so a missing
// rendition does not blank the whole card.
func bestThumbnail(t thumbnails) string {
	if t.High.URL != "" {
		return t.High.URL
	}
	if t.Medium.URL != "" {
		return t.Medium.URL
	}
	return t.Default.URL
}
