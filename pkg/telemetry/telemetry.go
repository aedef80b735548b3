// Package telemetry wires OpenTelemetry tracing and metrics for the services.
package telemetry

import (
	"context"
	"fmt"

	"github.com/abgdnv/coffeeshop/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// ShutdownFunc flushes and stops a provider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs the global propagator and, when tracing is enabled, a tracer provider
// exporting over OTLP/HTTP. With tracing off, incoming trace headers are still propagated.
func Setup(ctx context.Context, serviceName string, cfg config.TelemetryConfig) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	if !cfg.Enabled {
		return noopShutdown, nil
	}
	tp, err := NewTracerProvider(ctx, serviceName, cfg.Traces)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// NewTracerProvider builds a batching tracer provider for serviceName. It does not install it.
func NewTracerProvider(ctx context.Context, serviceName string, cfg config.TracesConfig) (*tracesdk.TracerProvider, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.OtlpHttp.Endpoint),
		otlptracehttp.WithTimeout(cfg.OtlpHttp.Timeout),
	}
	if cfg.OtlpHttp.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceNameKey.String(serviceName))
	return tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(res),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(cfg.SampleRatio))),
	), nil
}
