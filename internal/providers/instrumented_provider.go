package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/logging"
	"github.com/elibenporat/mlbbio/internal/metrics"
)

// instrumentedProvider records metrics and logs for every upstream call.
// It never retries; errors are returned as-is.
type instrumentedProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with per-call metrics and logging.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchPeople(ctx context.Context, ids []uint32) ([]people.Person, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	items, err := p.inner.FetchPeople(ctx, ids)
	p.observe(ctx, "fetch people", start, err, slog.Int(logging.FieldCount, len(ids)))
	if err == nil {
		p.metrics.RecordDecoded(p.providerName, len(items))
	}
	return items, err
}

func (p *instrumentedProvider) FetchPerson(ctx context.Context, id uint32) (people.Person, error) {
	if p.inner == nil {
		return people.Person{}, ErrProviderUnavailable
	}
	start := p.now()
	person, err := p.inner.FetchPerson(ctx, id)
	p.observe(ctx, "fetch person", start, err, logging.PlayerID(id))
	if err == nil {
		p.metrics.RecordDecoded(p.providerName, 1)
	}
	return person, err
}

func (p *instrumentedProvider) FetchBio(ctx context.Context, id uint32) (string, error) {
	if p.inner == nil {
		return "", ErrProviderUnavailable
	}
	start := p.now()
	bio, err := p.inner.FetchBio(ctx, id)
	p.observe(ctx, "fetch bio", start, err, logging.PlayerID(id))
	return bio, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error, args ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)
	if st, ok := AsStatusError(err); ok {
		p.metrics.RecordStatus(p.providerName, st.StatusCode)
	}

	args = append(args, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	if err != nil {
		args = append(args, "error", err)
		op += " failed"
	}
	logWithProvider(ctx, p.logger, levelFor(err), p.providerName, op, args...)
}
