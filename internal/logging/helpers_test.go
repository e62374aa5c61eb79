package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Debug(nil, "noop")
	Info(nil, "noop")
	Warn(nil, "noop", nil)
	Error(nil, "noop", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})
	Error(logger, "fetch failed", errors.New("boom"), FieldPlayerID, 545361)

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "player_id=545361") {
		t.Fatalf("expected error and player id fields, got %q", out)
	}
}

func TestWarnLogsAtWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})
	Warn(logger, "metrics dump failed", errors.New("closed pipe"))

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `error="closed pipe"`) {
		t.Fatalf("expected warn line with error, got %q", out)
	}
}
