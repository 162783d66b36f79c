//go:build unit

package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkbuddy/internal/infra/telemetry"
	"parkbuddy/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestParkingMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m := telemetry.NewParkingMetrics(mp)

	m.RecordAllocate(ctx, 1, "ok", 3*time.Millisecond)
	m.RecordAllocate(ctx, 1, "no_spot", time.Millisecond)
	m.RecordRelease(ctx, "ok", 2*time.Millisecond, 1500)
	m.RecordRelease(ctx, "already_released", time.Millisecond, 0)

	metrics := collect(t, reader)

	allocs, ok := metrics["parking.allocate"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, allocs.DataPoints, 2, "one series per result")

	billed, ok := metrics["parking.billed_cents"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, billed.DataPoints, 1)
	assert.Equal(t, uint64(1), billed.DataPoints[0].Count, "only successful releases are billed")
	assert.Equal(t, int64(1500), billed.DataPoints[0].Sum)
}

func TestParkingMetrics_NilIsNoop(t *testing.T) {
	var m *telemetry.ParkingMetrics
	assert.NotPanics(t, func() {
		m.RecordAllocate(context.Background(), 1, "ok", time.Millisecond)
		m.RecordRelease(context.Background(), "ok", time.Millisecond, 100)
	})
}

func TestProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("success: disabled provider serves 404 and no-op meters", func(t *testing.T) {
		p, err := telemetry.NewProvider(ctx, config.TelemetryConfig{MetricsEnabled: false})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotNil(t, p.MeterProvider())
		assert.NoError(t, p.Shutdown(ctx))
	})

	t.Run("success: enabled provider exports recorded metrics", func(t *testing.T) {
		p, err := telemetry.NewProvider(ctx, config.TelemetryConfig{MetricsEnabled: true, ServiceName: "parkbuddy-test"})
		require.NoError(t, err)
		defer func() { _ = p.Shutdown(ctx) }()

		telemetry.NewParkingMetrics(p.MeterProvider()).RecordAllocate(ctx, 7, "ok", time.Millisecond)

		rec := httptest.NewRecorder()
		p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "parking_allocate")
	})
}
