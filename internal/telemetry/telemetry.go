// Package telemetry installs the OpenTelemetry tracer provider for a run.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName identifies this program in exported spans
const ServiceName = "cryptorates"

// Telemetry owns the installed provider. The zero value is disabled.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
}

// Shutdown flushes pending spans and stops the exporter
func (t Telemetry) Shutdown(ctx context.Context) error {
	if t.TracerProvider == nil {
		return nil
	}
	return t.TracerProvider.Shutdown(ctx)
}

// Setup installs a tracer provider exporting to the OTLP/HTTP endpoint.
// An empty endpoint leaves the global provider untouched.
func Setup(ctx context.Context, endpoint string) (Telemetry, error) {
	if endpoint == "" {
		return Telemetry{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	r, err := newResource()
	if err != nil {
		return Telemetry{}, err
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return Telemetry{}, err
	}
	slog.Info("tracer export initialized", "type", "http", "endpoint", endpoint)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)

	return Telemetry{TracerProvider: tp}, nil
}

func newResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
		),
	)
}
