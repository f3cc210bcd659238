package domain

import "errors"

// ErrMoodRequired signals that a mood search was requested without any text.
var ErrMoodRequired = errors.New("domain: mood text is required")

// Video is one embeddable search result from the video platform, normalized
// for the browsing carousel. Immutable once constructed; a new search
// replaces the whole list.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

// Stream is one live broadcast from the fixed radio lookup. Same shape
// family as Video, minus the watch URL the radio widget never needs.
type Stream struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}
