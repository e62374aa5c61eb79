package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"on", true},
		{"off", false},
		{" false ", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected time.Duration
	}{
		{"", time.Second},
		{"2s", 2 * time.Second},
		{"-1s", time.Second},
		{"0s", time.Second},
		{"soon", time.Second},
		{"250", 250 * time.Millisecond},
		{"0", time.Second},
		{" 1m ", time.Minute},
	}

	for _, tc := range cases {
		t.Setenv("DURATION_TEST", tc.val)
		if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.val, got)
		}
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("STRING_TEST", "")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
	t.Setenv("STRING_TEST", "  ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %s", got)
	}
	t.Setenv("STRING_TEST", " fixture ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "fixture" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}
