package ports

import "context"

// QuerySynthesizer turns a mood description into a short lo-fi search
// phrase. The lo-fi guarantee lives in the model instructions, not in local
// validation.
type QuerySynthesizer interface {
	// QueryForMood synthesizes a search phrase from the user's mood text.
	QueryForMood(ctx context.Context, moodText string) (string, error)
	// RandomQuery synthesizes a search phrase for an invented mood.
	RandomQuery(ctx context.Context) (string, error)
}
