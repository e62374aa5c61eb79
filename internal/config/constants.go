package config

const (
	envProvider      = "PROVIDER"
	envStatsBaseURL  = "STATSAPI_BASE_URL"
	envStatsSchema   = "STATSAPI_SCHEMA"
	envRequestPace   = "REQUEST_PACE"
	envRosterFile    = "ROSTER_FILE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	defaultProvider  = "statsapi"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultService   = "mlbbio"
	// Pacing is off unless REQUEST_PACE is set.
	defaultRequestPace = 0
)
