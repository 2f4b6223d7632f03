package observability

import (
	"context"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordDispatch does nothing.
func (NoopMetrics) RecordDispatch(_ context.Context, _ string, _ error) {}

// RecordChildWrap does nothing.
func (NoopMetrics) RecordChildWrap(_ context.Context) {}

// RecordMerge does nothing.
func (NoopMetrics) RecordMerge(_ context.Context, _ int) {}
