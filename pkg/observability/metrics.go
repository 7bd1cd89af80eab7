package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Alijeyrad/sorriso_backend/pkg/observability"

// DiaryMetrics are the domain counters exported on /metrics.
type DiaryMetrics struct {
	reports metric.Int64Counter
	writes  metric.Int64Counter
}

// NewDiaryMetrics resolves instruments against the global meter provider,
// so it must run after InitTelemetry to be exported.
func NewDiaryMetrics() (*DiaryMetrics, error) {
	meter := otel.Meter(instrumentationName)

	reports, err := meter.Int64Counter(
		"report_generated_total",
		metric.WithDescription("Reports generated, by scope"),
		metric.WithUnit("{report}"),
	)
	if err != nil {
		return nil, err
	}

	writes, err := meter.Int64Counter(
		"diary_write_total",
		metric.WithDescription("Document mutations, by operation"),
		metric.WithUnit("{write}"),
	)
	if err != nil {
		return nil, err
	}

	return &DiaryMetrics{reports: reports, writes: writes}, nil
}

func (m *DiaryMetrics) ReportGenerated(ctx context.Context, scope string) {
	if m == nil {
		return
	}
	m.reports.Add(ctx, 1, metric.WithAttributes(attribute.String("scope", scope)))
}

func (m *DiaryMetrics) Write(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.writes.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}
