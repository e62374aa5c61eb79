package testutil

import (
	"bytes"
	"log/slog"

	"github.com/elibenporat/mlbbio/internal/logging"
)

// NewBufferLogger returns a debug-level text logger built like the CLI's,
// writing into the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewLogger(logging.Config{Level: "debug", Output: &buf}), &buf
}
