package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDiaryMetrics_ReportGenerated(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	m, err := NewDiaryMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.ReportGenerated(ctx, "daily")
	m.ReportGenerated(ctx, "general")
	m.ReportGenerated(ctx, "general")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	byScope := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "report_generated_total" {
				continue
			}
			sum, ok := md.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("scope")
				byScope[v.AsString()] = dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"daily": 1, "general": 2}, byScope)
}

func TestDiaryMetrics_NilIsNoop(t *testing.T) {
	var m *DiaryMetrics
	assert.NotPanics(t, func() {
		m.ReportGenerated(context.Background(), "daily")
		m.Write(context.Background(), "patient.create")
	})
}
