package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/jmod/internal/core/ports"
)

// InstrumentationName names the tracer used by jmod components.
const InstrumentationName = "go.trai.ch/jmod"

// NewProvider builds a tracer provider that reports every span through the logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}

// Tracer returns the jmod tracer of provider.
func Tracer(provider trace.TracerProvider) trace.Tracer {
	return provider.Tracer(InstrumentationName)
}
