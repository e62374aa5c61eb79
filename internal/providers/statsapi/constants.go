package statsapi

const (
	defaultBaseURL = "https://statsapi.mlb.com/api/v1"
	providerName   = "statsapi"
	tracerName     = "github.com/elibenporat/mlbbio/internal/providers/statsapi"
	// errorBodyLimit caps how much of a non-200 body is kept on StatusError.
	errorBodyLimit = 512
)
