// Package observability sets up OpenTelemetry tracing for the HTTP server.
package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceName = "property-ledger"

type TracingConfig struct {
	// Stdout exports finished spans to the process output.
	Stdout  bool
	Version string
}

// InitTracing installs the global tracer provider and propagator. Without an exporter spans are still
// created, so trace ids propagate, but nothing is exported. The returned func flushes and stops the provider.
func InitTracing(cfg TracingConfig, log *logrus.Logger) (func(context.Context) error, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", cfg.Version),
	)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.Stdout {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.WithField("stdout", cfg.Stdout).Info("observability.InitTracing")
	return tp.Shutdown, nil
}

// Middleware starts a server span per request, named after the method and the matched route.
func Middleware(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			if req.Pattern != "" {
				return req.Pattern
			}
			return req.Method + " " + req.URL.Path
		}),
	)
}
