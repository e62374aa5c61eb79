package statsapi

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://statsapi.mlb.com/api/v1/", "https://statsapi.mlb.com/api/v1"},
		{"http://localhost:8080", "http://localhost:8080"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestNewRestyClientHasNoTimeoutOrRetries(t *testing.T) {
	client := newRestyClient(defaultBaseURL, nil, nil)
	if client.RetryCount != 0 {
		t.Fatalf("expected no retries, got %d", client.RetryCount)
	}
	if client.GetClient().Timeout != 0 {
		t.Fatalf("expected no client timeout, got %s", client.GetClient().Timeout)
	}
	if client.BaseURL != defaultBaseURL {
		t.Fatalf("expected base url %s, got %s", defaultBaseURL, client.BaseURL)
	}
}

func TestNewRestyClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := newRestyClient(defaultBaseURL, custom, nil)
	if client.GetClient() != custom {
		t.Fatalf("expected provided client to be used")
	}
}
