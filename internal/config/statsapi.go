package config

const defaultStatsBaseURL = "https://statsapi.mlb.com/api/v1"

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL string
	// Schema names the decoding schema: minimal, strict or loose. Empty leaves
	// the choice to the command being run.
	Schema string
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Schema:  envOrDefault(envStatsSchema, ""),
	}
}
