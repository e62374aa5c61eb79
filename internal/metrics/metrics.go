package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	decoded         int
	statuses        map[int]int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// optionally forwards them to OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *providerStats) {
		stats.calls++
		stats.lastCallLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordDecoded adds n successfully decoded people records for a provider.
func (r *Recorder) RecordDecoded(provider string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.update(provider, func(stats *providerStats) {
		stats.decoded += n
	})
	if r.otel != nil {
		r.otel.recordDecoded(provider, n)
	}
}

// RecordStatus counts a non-200 upstream status code.
func (r *Recorder) RecordStatus(provider string, status int) {
	if r == nil {
		return
	}
	r.update(provider, func(stats *providerStats) {
		stats.statuses[status]++
	})
	if r.otel != nil {
		r.otel.recordStatus(provider, status)
	}
}

// RecordCommand tracks one CLI command run.
func (r *Recorder) RecordCommand(command string, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordCommand(command, duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// Decoded returns the number of people records decoded for a provider.
func (r *Recorder) Decoded(provider string) int {
	return r.Snapshot(provider).Decoded
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Decoded         int
	Statuses        map[int]int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	statuses := make(map[int]int, len(stats.statuses))
	for code, n := range stats.statuses {
		statuses[code] = n
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Decoded:         stats.decoded,
		Statuses:        statuses,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) update(provider string, fn func(*providerStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{statuses: make(map[int]int)}
		r.stats[provider] = stats
	}
	fn(stats)
}
