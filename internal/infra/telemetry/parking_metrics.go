package telemetry

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "parkbuddy/parking"

// ParkingMetrics records allocate and release outcomes.
type ParkingMetrics struct {
	allocateCount    metric.Int64Counter
	allocateDuration metric.Int64Histogram
	releaseCount     metric.Int64Counter
	releaseDuration  metric.Int64Histogram
	billedCents      metric.Int64Histogram
}

func NewParkingMetrics(mp metric.MeterProvider) *ParkingMetrics {
	meter := mp.Meter(meterName)
	m := &ParkingMetrics{}
	var err error

	m.allocateCount, err = meter.Int64Counter(
		"parking.allocate",
		metric.WithDescription("Spot allocation attempts"),
	)
	logMetricInitError("parking.allocate", err)

	m.allocateDuration, err = meter.Int64Histogram(
		"parking.allocate.duration_ms",
		metric.WithDescription("Spot allocation duration"),
		metric.WithUnit("ms"),
	)
	logMetricInitError("parking.allocate.duration_ms", err)

	m.releaseCount, err = meter.Int64Counter(
		"parking.release",
		metric.WithDescription("Reservation release attempts"),
	)
	logMetricInitError("parking.release", err)

	m.releaseDuration, err = meter.Int64Histogram(
		"parking.release.duration_ms",
		metric.WithDescription("Reservation release duration"),
		metric.WithUnit("ms"),
	)
	logMetricInitError("parking.release.duration_ms", err)

	m.billedCents, err = meter.Int64Histogram(
		"parking.billed_cents",
		metric.WithDescription("Amount billed per release"),
		metric.WithUnit("{cent}"),
	)
	logMetricInitError("parking.billed_cents", err)

	return m
}

func (m *ParkingMetrics) RecordAllocate(ctx context.Context, lotID int64, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("parking.result", result),
		attribute.String("parking.lot_id", strconv.FormatInt(lotID, 10)),
	)
	if m.allocateCount != nil {
		m.allocateCount.Add(ctx, 1, attrs)
	}
	if m.allocateDuration != nil {
		m.allocateDuration.Record(ctx, elapsed.Milliseconds(), attrs)
	}
}

func (m *ParkingMetrics) RecordRelease(ctx context.Context, result string, elapsed time.Duration, billedCents int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("parking.result", result))
	if m.releaseCount != nil {
		m.releaseCount.Add(ctx, 1, attrs)
	}
	if m.releaseDuration != nil {
		m.releaseDuration.Record(ctx, elapsed.Milliseconds(), attrs)
	}
	if m.billedCents != nil && result == "ok" {
		m.billedCents.Record(ctx, billedCents)
	}
}

func logMetricInitError(name string, err error) {
	if err == nil {
		return
	}
	slog.Warn("telemetry metric init failed", "name", name, "error", err.Error())
}
