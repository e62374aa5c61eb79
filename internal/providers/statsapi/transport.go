package statsapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// newRestyClient builds the HTTP client. There is no timeout and no retry;
// callers cancel through the request context.
func newRestyClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *resty.Client {
	var client *resty.Client
	if httpClient != nil {
		client = resty.NewWithClient(httpClient)
	} else {
		client = resty.New()
	}
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	instrumentClient(client, logger)
	return client
}
