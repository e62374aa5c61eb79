package statsapi

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return recorder
}

func TestRequestsAreTraced(t *testing.T) {
	recorder := installRecorder(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return jsonResponse(http.StatusServiceUnavailable, "down"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}, Logger: logger})

	if _, err := client.FetchBio(context.Background(), 545361); err == nil {
		t.Fatal("expected status error")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "http GET" {
		t.Fatalf("unexpected span name %s", span.Name())
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("expected error status on 503, got %v", span.Status())
	}
	var sawStatus bool
	for _, attr := range span.Attributes() {
		if attr.Key == "http.response.status_code" && attr.Value.AsInt64() == http.StatusServiceUnavailable {
			sawStatus = true
		}
	}
	if !sawStatus {
		t.Fatalf("expected status code attribute, got %v", span.Attributes())
	}

	out := buf.String()
	if !strings.Contains(out, "start request") || !strings.Contains(out, "status_code=503") {
		t.Fatalf("expected debug request logs, got %q", out)
	}
}

func TestTransportErrorsEndSpan(t *testing.T) {
	recorder := installRecorder(t)
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, errors.New("dial failure")
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchBio(context.Background(), 1); err == nil {
		t.Fatal("expected transport error")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error || len(spans[0].Events()) == 0 {
		t.Fatalf("expected recorded error on span, got %v", spans[0].Status())
	}
}
