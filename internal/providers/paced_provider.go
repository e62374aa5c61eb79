package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

// pacedProvider spaces upstream calls so sequential batches stay polite.
type pacedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewPacedProvider returns a DataProvider that allows at most one call per interval.
// A non-positive interval disables pacing and returns next unchanged.
func NewPacedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		return next
	}
	return &pacedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *pacedProvider) FetchPeople(ctx context.Context, ids []uint32) ([]people.Person, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPeople(ctx, ids)
}

func (p *pacedProvider) FetchPerson(ctx context.Context, id uint32) (people.Person, error) {
	if err := p.wait(ctx); err != nil {
		return people.Person{}, err
	}
	return p.next.FetchPerson(ctx, id)
}

func (p *pacedProvider) FetchBio(ctx context.Context, id uint32) (string, error) {
	if err := p.wait(ctx); err != nil {
		return "", err
	}
	return p.next.FetchBio(ctx, id)
}

func (p *pacedProvider) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "paced fetch canceled", "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
