package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records service-level operation outcomes. Implementations must be
// safe for concurrent use.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
	RecordRowsComputed(ctx context.Context, view string, count int)
}

type otelMetrics struct {
	attempts  metric.Int64Counter
	successes metric.Int64Counter
	failures  metric.Int64Counter
	duration  metric.Float64Histogram
	rows      metric.Int64Histogram
}

// NewMetrics builds otel-backed metrics from a meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	attempts, err := meter.Int64Counter("operation_attempts_total")
	if err != nil {
		return nil, err
	}
	successes, err := meter.Int64Counter("operation_successes_total")
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("operation_failures_total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("operation_duration_seconds")
	if err != nil {
		return nil, err
	}
	rows, err := meter.Int64Histogram("leaderboard_rows_computed")
	if err != nil {
		return nil, err
	}
	return &otelMetrics{
		attempts:  attempts,
		successes: successes,
		failures:  failures,
		duration:  duration,
		rows:      rows,
	}, nil
}

func opAttr(operation string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("operation", operation))
}

func (m *otelMetrics) RecordOperationAttempt(ctx context.Context, operation string) {
	m.attempts.Add(ctx, 1, opAttr(operation))
}

func (m *otelMetrics) RecordOperationSuccess(ctx context.Context, operation string) {
	m.successes.Add(ctx, 1, opAttr(operation))
}

func (m *otelMetrics) RecordOperationFailure(ctx context.Context, operation string) {
	m.failures.Add(ctx, 1, opAttr(operation))
}

func (m *otelMetrics) RecordOperationDuration(ctx context.Context, operation string, d time.Duration) {
	m.duration.Record(ctx, d.Seconds(), opAttr(operation))
}

func (m *otelMetrics) RecordRowsComputed(ctx context.Context, view string, count int) {
	m.rows.Record(ctx, int64(count), metric.WithAttributes(attribute.String("view", view)))
}

type noopMetrics struct{}

// NewNoopMetrics returns metrics that discard everything; the default for
// tests and for runs without a collector.
func NewNoopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) RecordOperationAttempt(context.Context, string)                {}
func (noopMetrics) RecordOperationSuccess(context.Context, string)                {}
func (noopMetrics) RecordOperationFailure(context.Context, string)                {}
func (noopMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (noopMetrics) RecordRowsComputed(context.Context, string, int)               {}
