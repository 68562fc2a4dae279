package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bodygraph/application/ports"
	"bodygraph/domain/config"
	vo "bodygraph/domain/core/valueobjects"
	domainservices "bodygraph/domain/services"
	"bodygraph/infrastructure/ephemeris"
	pkgerrors "bodygraph/pkg/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newCalculator(provider ports.EphemerisProvider, metrics *recordingMetrics, logger *zap.Logger) *HumanDesignCalculator {
	cfg := config.DefaultDomainConfig()
	var m ports.CalculationMetrics
	if metrics != nil {
		m = metrics
	}
	return NewHumanDesignCalculator(
		NewEphemerisCalculator(provider, cfg),
		domainservices.NewDefaultChartAnalyzer(),
		domainservices.NewTypeDistributionAggregator(cfg),
		cfg,
		m,
		nil,
		logger,
	)
}

func johnDoe(t *testing.T, known bool) vo.BirthInput {
	t.Helper()
	var clock *string
	if known {
		c := "14:30"
		clock = &c
	}
	in, err := vo.NewBirthInput("John Doe", "1990-05-15", clock, 37.7749, -122.4194, "America/Los_Angeles")
	require.NoError(t, err)
	return in
}

func TestCalculateFullChart(t *testing.T) {
	calc := newCalculator(ephemeris.NewAnalyticProvider(), nil, nil)

	chart, err := calc.Calculate(context.Background(), johnDoe(t, true))
	require.NoError(t, err)

	assert.Equal(t, vo.AccuracyFull, chart.Accuracy())
	assert.True(t, chart.Type().Valid())
	assert.NotEmpty(t, chart.Strategy())
	assert.Len(t, chart.PersonalityGates(), vo.BodyCount)
	assert.Len(t, chart.DesignGates(), vo.BodyCount)
	assert.Equal(t, vo.CenterCount, len(chart.DefinedCenters())+len(chart.UndefinedCenters()))
	for _, c := range chart.DefinedCenters() {
		assert.True(t, c.Valid())
	}
	_, ok := chart.TypeProbabilities()
	assert.False(t, ok)

	assert.InDelta(t, 2448027.395833, chart.BirthJulianDate().Float(), 1e-6)
	elapsed := chart.BirthJulianDate().Sub(chart.DesignJulianDate())
	assert.Greater(t, elapsed, 85.0)
	assert.Less(t, elapsed, 93.0)

	personalitySun := chart.PersonalityGates()[0]
	designSun := chart.DesignGates()[0]
	require.Equal(t, vo.Sun, personalitySun.Body)
	assert.LessOrEqual(t, arcDistance(designSun.Longitude, NormalizeDegrees(personalitySun.Longitude-88)), 1e-4)
	assert.Equal(t, chart.Profile().PersonalityLine, personalitySun.Line)
	assert.Equal(t, chart.Profile().DesignLine, designSun.Line)
	assert.Equal(t, personalitySun.Gate, chart.IncarnationCross().Gates.PersonalitySun)
}

func TestCalculateIsDeterministic(t *testing.T) {
	calc := newCalculator(ephemeris.NewAnalyticProvider(), nil, nil)

	for _, known := range []bool{true, false} {
		first, err := calc.Calculate(context.Background(), johnDoe(t, known))
		require.NoError(t, err)
		second, err := calc.Calculate(context.Background(), johnDoe(t, known))
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		if diff := cmp.Diff(string(a), string(b)); diff != "" {
			t.Errorf("chart JSON differs (-first +second):\n%s", diff)
		}
		if diff := cmp.Diff(first.PersonalityGates(), second.PersonalityGates()); diff != "" {
			t.Errorf("personality gates differ (-first +second):\n%s", diff)
		}
	}
}

func TestCalculateProbabilisticChart(t *testing.T) {
	metrics := newRecordingMetrics()
	calc := newCalculator(ephemeris.NewAnalyticProvider(), metrics, nil)

	chart, err := calc.Calculate(context.Background(), johnDoe(t, false))
	require.NoError(t, err)

	assert.Equal(t, vo.AccuracyProbabilistic, chart.Accuracy())
	dist, ok := chart.TypeProbabilities()
	require.True(t, ok)
	assert.Equal(t, 24, dist.ValidSamples)
	assert.Empty(t, dist.FailedHours)
	assert.Equal(t, dist.MostLikely, chart.Type())

	sum := 0.0
	for typ, p := range dist.Probabilities {
		assert.True(t, typ.Valid())
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	hour, ok := chart.BaselineHour()
	require.True(t, ok)
	assert.Equal(t, 12, hour)
	assert.Equal(t, 1, metrics.calculations[vo.AccuracyProbabilistic])
}

func TestProbabilisticDisplayFieldsComeFromNoon(t *testing.T) {
	calc := newCalculator(ephemeris.NewAnalyticProvider(), nil, nil)

	probabilistic, err := calc.Calculate(context.Background(), johnDoe(t, false))
	require.NoError(t, err)

	noon := "12:00"
	in, err := vo.NewBirthInput("John Doe", "1990-05-15", &noon, 37.7749, -122.4194, "America/Los_Angeles")
	require.NoError(t, err)
	full, err := calc.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, full.PersonalityGates(), probabilistic.PersonalityGates())
	assert.Equal(t, full.Authority(), probabilistic.Authority())
	assert.Equal(t, full.Profile(), probabilistic.Profile())
	assert.Equal(t, full.DefinedCenters(), probabilistic.DefinedCenters())
	assert.NotEqual(t, full.ID(), probabilistic.ID())
}

func TestProbabilisticSkipsFailedHours(t *testing.T) {
	in, err := vo.NewBirthInput("Jane", "2000-03-01", nil, 0, 0, "UTC")
	require.NoError(t, err)

	// birth instants of 03:00 and 17:00 UTC
	provider := &linearProvider{failAt: []vo.JulianDate{
		BirthJulianDate(in.AtHour(3)),
		BirthJulianDate(in.AtHour(17)),
	}}
	core, logs := observer.New(zapcore.WarnLevel)
	metrics := newRecordingMetrics()
	calc := newCalculator(provider, metrics, zap.New(core))

	chart, err := calc.Calculate(context.Background(), in)
	require.NoError(t, err)

	dist, ok := chart.TypeProbabilities()
	require.True(t, ok)
	assert.Equal(t, 22, dist.ValidSamples)
	assert.Equal(t, []int{3, 17}, dist.FailedHours)
	assert.ElementsMatch(t, []int{3, 17}, metrics.sampleFailures)

	skipped := logs.FilterMessage("Skipping hourly sample").All()
	require.Len(t, skipped, 2)
	assert.Equal(t, int64(3), skipped[0].ContextMap()["hour"])
}

func TestProbabilisticSkipsHourMissingFromTheClock(t *testing.T) {
	in, err := vo.NewBirthInput("Jane", "1990-04-01", nil, 34.05, -118.24, "America/Los_Angeles")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.WarnLevel)
	metrics := newRecordingMetrics()
	calc := newCalculator(&linearProvider{}, metrics, zap.New(core))

	chart, err := calc.Calculate(context.Background(), in)
	require.NoError(t, err)

	dist, ok := chart.TypeProbabilities()
	require.True(t, ok)
	assert.Equal(t, 23, dist.ValidSamples)
	assert.Equal(t, []int{2}, dist.FailedHours)
	assert.Equal(t, []int{2}, metrics.sampleFailures)

	skipped := logs.FilterMessage("Skipping hourly sample").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "NONEXISTENT_LOCAL_TIME", skipped[0].ContextMap()["error_code"])
}

func TestProbabilisticFailsWhenBaselineFails(t *testing.T) {
	in, err := vo.NewBirthInput("Jane", "2000-03-01", nil, 0, 0, "UTC")
	require.NoError(t, err)
	provider := &linearProvider{failAt: []vo.JulianDate{BirthJulianDate(in.AtHour(12))}}

	_, err = newCalculator(provider, nil, nil).Calculate(context.Background(), in)
	assert.True(t, pkgerrors.IsEphemeris(err))
}

func TestProbabilisticWithNoValidSample(t *testing.T) {
	metrics := newRecordingMetrics()
	calc := newCalculator(failingProvider{}, metrics, nil)

	_, err := calc.Calculate(context.Background(), johnDoe(t, false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrAllSamplesFailed))
	assert.Len(t, metrics.sampleFailures, 24)
	assert.Equal(t, 1, metrics.errors)
}

func TestFullModePropagatesEphemerisErrors(t *testing.T) {
	_, err := newCalculator(failingProvider{}, nil, nil).Calculate(context.Background(), johnDoe(t, true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrEphemerisUnavailable))
}

func TestCalculateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calc := newCalculator(&linearProvider{}, nil, nil)
	for _, known := range []bool{true, false} {
		_, err := calc.Calculate(ctx, johnDoe(t, known))
		assert.True(t, errors.Is(err, pkgerrors.ErrCalculationTimeout))
		assert.True(t, errors.Is(err, context.Canceled))
	}
}

func TestSamplingIsIndependentOfWorkerCount(t *testing.T) {
	in := johnDoe(t, false)
	var charts [][]byte

	for _, workers := range []int{1, 3, 24} {
		cfg := config.DefaultDomainConfig()
		cfg.SampleWorkers = workers
		calc := NewHumanDesignCalculator(
			NewEphemerisCalculator(&linearProvider{}, cfg),
			domainservices.NewDefaultChartAnalyzer(),
			domainservices.NewTypeDistributionAggregator(cfg),
			cfg, nil, nil, nil,
		)
		chart, err := calc.Calculate(context.Background(), in)
		require.NoError(t, err)

		data, err := json.Marshal(chart)
		require.NoError(t, err)
		charts = append(charts, data)
	}
	assert.Equal(t, string(charts[0]), string(charts[1]))
	assert.Equal(t, string(charts[0]), string(charts[2]))
}

func TestCalculateRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	core, logs := observer.New(zapcore.DebugLevel)
	cfg := config.DefaultDomainConfig()
	calc := NewHumanDesignCalculator(
		NewEphemerisCalculator(&linearProvider{}, cfg),
		domainservices.NewDefaultChartAnalyzer(),
		domainservices.NewTypeDistributionAggregator(cfg),
		cfg, nil, tp.Tracer("test"), zap.New(core),
	)

	chart, err := calc.Calculate(context.Background(), johnDoe(t, true))
	require.NoError(t, err)
	_, err = newCalculatorWithTracer(failingProvider{}, tp).Calculate(context.Background(), johnDoe(t, true))
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "HumanDesignCalculator.Calculate", spans[0].Name())
	assert.Equal(t, "full", attrs["chart.accuracy"])
	assert.Equal(t, "linear", attrs["ephemeris.provider"])
	assert.Equal(t, chart.ID().String(), attrs["chart.id"])
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	done := logs.FilterMessage("Chart calculated").All()
	require.Len(t, done, 1)
	assert.Equal(t, spans[0].SpanContext().TraceID().String(), done[0].ContextMap()["trace_id"])
}

func newCalculatorWithTracer(provider ports.EphemerisProvider, tp *sdktrace.TracerProvider) *HumanDesignCalculator {
	cfg := config.DefaultDomainConfig()
	return NewHumanDesignCalculator(
		NewEphemerisCalculator(provider, cfg),
		domainservices.NewDefaultChartAnalyzer(),
		domainservices.NewTypeDistributionAggregator(cfg),
		cfg, nil, tp.Tracer("test"), nil,
	)
}
