package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// loadMetrics reads telemetry settings. Configuring an OTLP endpoint turns
// metrics on; a URL endpoint is reduced to host:port and its scheme decides
// whether the exporter uses TLS.
func loadMetrics() MetricsConfig {
	cfg := MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		ServiceName:  envOrDefault(envOtelService, defaultService),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
	endpoint := envOrDefault(envOtelEndpoint, "")
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint = strings.TrimPrefix(endpoint, "https://")
		cfg.OtlpInsecure = false
	case strings.HasPrefix(endpoint, "http://"):
		endpoint = strings.TrimPrefix(endpoint, "http://")
		cfg.OtlpInsecure = true
	}
	cfg.OtlpEndpoint = strings.TrimSuffix(endpoint, "/")
	if cfg.OtlpEndpoint != "" {
		cfg.Enabled = true
	}
	return cfg
}
