// Package telemetry provides OpenTelemetry tracing for game sessions, exported
// to Honeycomb over OTLP HTTP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "zombiecruise"
	serviceVersion = "0.1.0"
)

// Options configure the exporter.
type Options struct {
	Endpoint string // Host and port, empty for the OTEL_* default
	Headers  map[string]string
	Insecure bool
	Version  string // Reported as service.version, empty for the build default
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter. Anything left
// empty in opts falls back to the standard OTEL_* environment variables.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx, opts.exporterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	version := opts.Version
	if version == "" {
		version = serviceVersion
	}

	// Build resource with service information
	// Not merged with resource.Default(), whose schema URL can differ
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	// Create trace provider with batch span processor
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// Register as global provider
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
// Use this to create spans within different parts of the application.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("zombiecruise/" + name)
}

func (o Options) exporterOptions() []otlptracehttp.Option {
	var out []otlptracehttp.Option
	if o.Endpoint != "" {
		out = append(out, otlptracehttp.WithEndpoint(o.Endpoint))
	}
	if len(o.Headers) > 0 {
		out = append(out, otlptracehttp.WithHeaders(o.Headers))
	}
	if o.Insecure {
		out = append(out, otlptracehttp.WithInsecure())
	}
	return out
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
