package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Upstream credentials
	OpenAIAPIKey  string
	YouTubeAPIKey string

	// Upstream endpoints, overridable for local stubs
	OpenAIBaseURL  string
	YouTubeBaseURL string

	// Server
	Port int
}

// Load reads configuration from environment variables with sane defaults.
// Credentials have no defaults; callers decide whether their absence is
// fatal.
func Load() Config {
	return Config{
		OpenAIAPIKey:  envStr("OPENAI_API_KEY", ""),
		YouTubeAPIKey: envStr("YOUTUBE_API_KEY", ""),

		OpenAIBaseURL:  envStr("OPENAI_BASE_URL", ""),
		YouTubeBaseURL: envStr("YOUTUBE_BASE_URL", ""),

		Port: envInt("PORT", 3001),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
