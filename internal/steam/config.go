package steam

import "time"

// DefaultBaseURL is the public Steam Web API endpoint
const DefaultBaseURL = "https://api.steampowered.com"

// Config holds Steam Web API client settings
type Config struct {
	// BaseURL is the API base URL; override it in tests
	BaseURL string

	// APIKey is the Steam Web API key used for every request
	APIKey string

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the given API key
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
		Timeout: 15 * time.Second,
	}
}
