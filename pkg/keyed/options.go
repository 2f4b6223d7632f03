package keyed

import (
	"log/slog"

	"github.com/randalmurphal/keyed/pkg/keyed/observability"
)

// options holds the configuration shared by a container and its children.
type options struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	path    string
}

// defaultOptions returns the default container configuration.
func defaultOptions() options {
	return options{
		metrics: observability.NoopMetrics{},
	}
}

// Option configures a Container.
type Option func(*options)

// WithLogger sets the logger used for debug and warning output.
// Default: nil (no logging)
//
// Children inherit the logger with their path attached.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics{}
//
// Example:
//
//	c := keyed.New(data, keyed.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithPath labels the container with a dotted path. The path prefixes
// the paths of children and appears in log output.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
