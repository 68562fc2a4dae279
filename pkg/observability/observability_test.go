package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

func TestCollectorObserveCalculation(t *testing.T) {
	c := NewCollector("test")

	c.ObserveCalculation(vo.AccuracyFull, 10*time.Millisecond, nil)
	c.ObserveCalculation(vo.AccuracyFull, 10*time.Millisecond, pkgerrors.ErrEphemerisUnavailable)
	c.ObserveCalculation(vo.AccuracyProbabilistic, time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Calculations.WithLabelValues("full", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Calculations.WithLabelValues("full", "EPHEMERIS_ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Calculations.WithLabelValues("probabilistic", "internal")))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.ObserveSampleFailure(3)
	a.RecordCacheHit(true)
	b.RecordCacheHit(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SampleFailures.WithLabelValues("3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.CacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.CacheMisses))
}

func TestQueryTimer(t *testing.T) {
	c := NewCollector("test")

	timer := c.StartTimer("query_duration", "CalculateChartQuery")
	timer.Stop()
	c.Increment("query_count", "CalculateChartQuery")

	assert.Equal(t, 1, testutil.CollectAndCount(c.QueryDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Queries.WithLabelValues("query_count", "CalculateChartQuery")))
}

func TestInitTracingDisabled(t *testing.T) {
	tp, err := InitTracing(context.Background(), TracingConfig{})
	require.NoError(t, err)

	_, span := tp.Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestRecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := NewTracerProviderFrom(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), "test")

	_, span := tp.Tracer().Start(context.Background(), "failing")
	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "boom", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}
