package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup returns the trimmed value of key; .env files often carry trailing spaces.
func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envOrDefault(key, defaultValue string) string {
	if val := lookup(key); val != "" {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault parses a Go duration. A bare integer is taken as
// milliseconds so REQUEST_PACE=250 works.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := lookup(key)
	if raw == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		if ms <= 0 {
			return defaultValue
		}
		return time.Duration(ms) * time.Millisecond
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := lookup(key)
	switch strings.ToLower(raw) {
	case "":
		return defaultValue
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}
