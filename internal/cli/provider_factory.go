package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/elibenporat/mlbbio/internal/config"
	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/metrics"
	"github.com/elibenporat/mlbbio/internal/providers"
	"github.com/elibenporat/mlbbio/internal/providers/fixture"
	"github.com/elibenporat/mlbbio/internal/providers/statsapi"
)

const (
	providerStatsAPI = "statsapi"
	providerFixture  = "fixture"
)

// providerFactory assembles the provider with shared wrappers (pacing + instrumentation).
type providerFactory struct {
	logger     *slog.Logger
	metrics    *metrics.Recorder
	httpClient *http.Client
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder, httpClient *http.Client) providerFactory {
	return providerFactory{logger: logger, metrics: recorder, httpClient: httpClient}
}

// build wraps base, or the configured provider when base is nil.
func (f providerFactory) build(cfg config.Config, schema people.Schema, base providers.DataProvider) (providers.DataProvider, error) {
	if base == nil {
		selected, err := f.selectProvider(cfg, schema)
		if err != nil {
			return nil, err
		}
		base = selected
	}
	paced := providers.NewPacedProvider(base, cfg.RequestPace, f.logger)
	return providers.NewInstrumentedProvider(paced, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base)), nil
}

func (f providerFactory) selectProvider(cfg config.Config, schema people.Schema) (providers.DataProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case providerStatsAPI, "":
		return statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.StatsAPI.BaseURL,
			Schema:     schema,
			HTTPClient: f.httpClient,
			Logger:     f.logger,
		}), nil
	case providerFixture:
		return fixture.New(fixture.WithSchema(schema)), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want %s or %s)", cfg.Provider, providerStatsAPI, providerFixture)
	}
}
