package statsapi

import (
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/elibenporat/mlbbio/internal/logging"
)

// instrumentClient wraps every request in a span from the global tracer
// provider and logs it at debug level.
func instrumentClient(client *resty.Client, logger *slog.Logger) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(onBeforeRequest(tracer, logger))
	client.OnAfterResponse(onAfterResponse(logger))
	client.OnError(onError(logger))
}

func onBeforeRequest(tracer trace.Tracer, logger *slog.Logger) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		ctx, span := tracer.Start(req.Context(), fmt.Sprintf("http %s", req.Method), trace.WithSpanKind(trace.SpanKindClient))
		span.SetAttributes(semconv.HTTPRequestMethodKey.String(req.Method))
		req.SetContext(ctx)
		logging.Debug(logger, "start request",
			slog.String(logging.FieldMethod, req.Method),
			slog.String(logging.FieldURL, req.URL),
		)
		return nil
	}
}

func onAfterResponse(logger *slog.Logger) resty.ResponseMiddleware {
	return func(_ *resty.Client, res *resty.Response) error {
		span := trace.SpanFromContext(res.Request.Context())
		defer span.End()

		// RawRequest is only populated once the request has been sent.
		if res.Request.RawRequest != nil {
			span.SetAttributes(semconv.URLFull(res.Request.RawRequest.URL.String()))
		}
		span.SetAttributes(semconv.HTTPResponseStatusCode(res.StatusCode()))
		if res.StatusCode() >= 400 {
			span.SetStatus(codes.Error, res.Status())
		}

		logging.Debug(logger, "request finished",
			slog.String(logging.FieldMethod, res.Request.Method),
			slog.String(logging.FieldURL, res.Request.URL),
			slog.Int(logging.FieldStatusCode, res.StatusCode()),
			slog.Int64(logging.FieldDurationMS, res.Time().Milliseconds()),
		)
		return nil
	}
}

func onError(logger *slog.Logger) resty.ErrorHook {
	return func(req *resty.Request, err error) {
		span := trace.SpanFromContext(req.Context())
		defer span.End()

		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		if req.RawRequest != nil {
			span.SetAttributes(semconv.URLFull(req.RawRequest.URL.String()))
		}

		logging.Debug(logger, "request failed",
			slog.String(logging.FieldMethod, req.Method),
			slog.String(logging.FieldURL, req.URL),
			"error", err,
		)
	}
}
