package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/uni-verse/universe-backend/internal/logger"
)

const ServiceName = "universe-backend"

// SetupTracing installs a tracer provider per the configured exporter:
// "stdout", "otlp" (OTLP over HTTP, endpoint from the standard OTEL env
// vars), or empty/"none" for disabled. Returns a shutdown hook and whether
// tracing is active.
func SetupTracing(ctx context.Context, exporter string, log *logger.Logger) (func(context.Context) error, bool, error) {
	noop := func(context.Context) error { return nil }

	var spanExporter sdktrace.SpanExporter
	var err error
	switch exporter {
	case "", "none":
		return noop, false, nil
	case "stdout":
		spanExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp":
		spanExporter, err = otlptracehttp.New(ctx)
	default:
		return noop, false, fmt.Errorf("unknown trace exporter %q", exporter)
	}
	if err != nil {
		return noop, false, fmt.Errorf("init %s trace exporter: %w", exporter, err)
	}

	res, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
		),
	)
	if err != nil {
		return noop, false, fmt.Errorf("build trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	log.Info("Tracing enabled", "exporter", exporter)
	return provider.Shutdown, true, nil
}
