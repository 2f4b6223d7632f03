package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records container metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordDispatch records an accessor call and whether it was rejected.
	// verb is empty when the name had no verb prefix.
	RecordDispatch(ctx context.Context, verb string, err error)

	// RecordChildWrap records the creation of a child container.
	RecordChildWrap(ctx context.Context)

	// RecordMerge records the number of entries merged into a container.
	RecordMerge(ctx context.Context, entries int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	dispatchCalls  metric.Int64Counter
	dispatchErrors metric.Int64Counter
	childWraps     metric.Int64Counter
	mergeEntries   metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initialises the shared OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("keyed")

	dispatchCalls, err := meter.Int64Counter("keyed.dispatch.calls",
		metric.WithDescription("Number of accessor calls"),
	)
	if err != nil {
		return nil, err
	}

	dispatchErrors, err := meter.Int64Counter("keyed.dispatch.errors",
		metric.WithDescription("Number of rejected accessor calls"),
	)
	if err != nil {
		return nil, err
	}

	childWraps, err := meter.Int64Counter("keyed.child.wraps",
		metric.WithDescription("Number of child containers created for nested maps"),
	)
	if err != nil {
		return nil, err
	}

	mergeEntries, err := meter.Int64Histogram("keyed.merge.entries",
		metric.WithDescription("Entries per merge"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		dispatchCalls:  dispatchCalls,
		dispatchErrors: dispatchErrors,
		childWraps:     childWraps,
		mergeEntries:   mergeEntries,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDispatch records an accessor call.
func (m *otelMetrics) RecordDispatch(ctx context.Context, verb string, err error) {
	if verb == "" {
		verb = "none"
	}
	attrs := metric.WithAttributes(attribute.String("verb", verb))

	m.dispatchCalls.Add(ctx, 1, attrs)
	if err != nil {
		m.dispatchErrors.Add(ctx, 1, attrs)
	}
}

// RecordChildWrap records a child container creation.
func (m *otelMetrics) RecordChildWrap(ctx context.Context) {
	m.childWraps.Add(ctx, 1)
}

// RecordMerge records a merge.
func (m *otelMetrics) RecordMerge(ctx context.Context, entries int) {
	m.mergeEntries.Record(ctx, int64(entries))
}
