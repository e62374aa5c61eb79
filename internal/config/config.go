package config

import "time"

// Config holds runtime configuration for the CLI.
type Config struct {
	Provider    string
	RequestPace time.Duration
	RosterFile  string
	StatsAPI    StatsAPIConfig
	Logging     LoggingConfig
	Metrics     MetricsConfig
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// Call LoadDotEnv first to pick up a .env file.
func Load() Config {
	return Config{
		Provider:    envOrDefault(envProvider, defaultProvider),
		RequestPace: durationEnvOrDefault(envRequestPace, defaultRequestPace),
		RosterFile:  envOrDefault(envRosterFile, ""),
		StatsAPI:    loadStatsAPI(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}
