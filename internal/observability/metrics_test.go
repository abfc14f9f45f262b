package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetricsRecordsWithoutError(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics failed: %+v", err)
	}

	// Every instrument must be usable straight after construction.
	ctx := context.Background()
	m.RecordOperationAttempt(ctx, "RefreshDaily")
	m.RecordOperationSuccess(ctx, "RefreshDaily")
	m.RecordOperationFailure(ctx, "RefreshDaily")
	m.RecordOperationDuration(ctx, "RefreshDaily", 25*time.Millisecond)
	m.RecordRowsComputed(ctx, "daily", 12)
}
