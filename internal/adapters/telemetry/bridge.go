package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Bridge implements sdktrace.SpanProcessor and reports every finished span through a Logger.
// It backs the --trace flag.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and its duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(fmt.Sprintf("trace %s failed after %s: %s", s.Name(), elapsed, firstLine(desc)))
		return
	}
	b.logger.Info(fmt.Sprintf("trace %s took %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Setup registers a global TracerProvider. When logger is non-nil finished spans are reported
// through a Bridge. The returned function flushes and shuts the provider down.
func Setup(logger ports.Logger) func(context.Context) error {
	var opts []sdktrace.TracerProviderOption
	if logger != nil {
		opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(logger)))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return zerr.Wrap(err, "failed to shut down tracer provider")
		}
		return nil
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
