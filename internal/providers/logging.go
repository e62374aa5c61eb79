package providers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/elibenporat/mlbbio/internal/logging"
)

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}

// levelFor picks the log level for a provider call outcome. Unknown players
// and interrupted commands are expected outcomes and log as warnings.
func levelFor(err error) slog.Level {
	switch {
	case err == nil:
		return slog.LevelDebug
	case errors.Is(err, ErrPersonNotFound), errors.Is(err, context.Canceled):
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
