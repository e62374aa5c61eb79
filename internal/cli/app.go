package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/elibenporat/mlbbio/internal/config"
	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/logging"
	"github.com/elibenporat/mlbbio/internal/metrics"
	"github.com/elibenporat/mlbbio/internal/providers"
)

const serviceName = "mlbbio"

// Version is stamped at build time.
var Version = "dev"

var metricsSetup = metrics.Setup

// Options injects I/O and collaborators; zero values use the process defaults.
type Options struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	HTTPClient *http.Client
	// Provider replaces the configured provider; it is still paced and instrumented.
	Provider providers.DataProvider
	Now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type flagValues struct {
	provider  string
	baseURL   string
	schema    string
	pace      time.Duration
	logLevel  string
	logFormat string
	metrics   bool
}

// app holds what a single command invocation needs.
type app struct {
	opts     Options
	flags    flagValues
	cfg      config.Config
	schema   people.Schema
	logger   *slog.Logger
	recorder *metrics.Recorder
	dump     metrics.Dumper
	shutdown func(context.Context) error
	provider providers.DataProvider
	started  time.Time
}

// setup loads configuration, applies flag overrides and wires the provider.
func (a *app) setup(cmd *cobra.Command) error {
	a.started = a.opts.Now()
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	a.cfg = config.Load()
	a.applyFlags(cmd.Flags())

	a.logger = logging.NewLogger(logging.Config{
		Level:   a.cfg.Logging.Level,
		Format:  a.cfg.Logging.Format,
		Service: serviceName,
		Version: Version,
		Output:  a.opts.Stderr,
	})

	schema, err := schemaFor(cmd.Name(), a.cfg.StatsAPI.Schema)
	if err != nil {
		return err
	}
	a.schema = schema

	a.recorder, a.dump, a.shutdown = a.buildMetrics(cmd.Context())

	provider, err := newProviderFactory(a.logger, a.recorder, a.opts.HTTPClient).build(a.cfg, a.schema, a.opts.Provider)
	if err != nil {
		return err
	}
	a.provider = provider

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	a.logger.Debug("command starting",
		slog.String(logging.FieldCommand, cmd.Name()),
		slog.String(logging.FieldProvider, a.cfg.Provider),
		logging.Schema(a.schema.String()),
	)
	return nil
}

func (a *app) applyFlags(flags *pflag.FlagSet) {
	if flags.Changed("provider") {
		a.cfg.Provider = a.flags.provider
	}
	if flags.Changed("base-url") {
		a.cfg.StatsAPI.BaseURL = a.flags.baseURL
	}
	if flags.Changed("schema") {
		a.cfg.StatsAPI.Schema = a.flags.schema
	}
	if flags.Changed("pace") {
		a.cfg.RequestPace = a.flags.pace
	}
	if flags.Changed("log-level") {
		a.cfg.Logging.Level = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		a.cfg.Logging.Format = a.flags.logFormat
	}
	if flags.Changed("metrics") {
		a.cfg.Metrics.Enabled = a.flags.metrics
	}
}

func (a *app) buildMetrics(ctx context.Context) (*metrics.Recorder, metrics.Dumper, func(context.Context) error) {
	rec, dump, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:        a.cfg.Metrics.Enabled,
		ServiceName:    a.cfg.Metrics.ServiceName,
		ServiceVersion: Version,
		OtlpEndpoint:   a.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   a.cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(a.logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, dump, shutdown
}

// finish records the command outcome, dumps metrics and flushes exporters.
func (a *app) finish(command string, runErr error) {
	if a.recorder == nil {
		return
	}
	a.recorder.RecordCommand(command, a.opts.Now().Sub(a.started), runErr)

	if a.dump != nil {
		if err := a.dump(a.opts.Stderr); err != nil {
			logging.Warn(a.logger, "metrics dump failed", err)
		}
	}
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.shutdown(ctx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", err)
		}
	}
}

// loggerFor prefers the logger carried by ctx.
func (a *app) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, a.logger)
}
