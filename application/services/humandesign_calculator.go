package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bodygraph/application/ports"
	"bodygraph/domain/config"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	domainservices "bodygraph/domain/services"
	"bodygraph/pkg/common"
	pkgerrors "bodygraph/pkg/errors"
	"bodygraph/pkg/observability"
)

// HumanDesignCalculator computes charts. It is immutable after construction
// and safe for concurrent use.
type HumanDesignCalculator struct {
	ephemeris    *EphemerisCalculator
	analyzer     *domainservices.ChartAnalyzer
	distribution *domainservices.TypeDistributionAggregator
	config       *config.DomainConfig
	metrics      ports.CalculationMetrics
	tracer       trace.Tracer
	logger       *zap.Logger
}

// NewHumanDesignCalculator creates a calculator. Nil metrics, tracer and
// logger fall back to no-ops.
func NewHumanDesignCalculator(
	ephemeris *EphemerisCalculator,
	analyzer *domainservices.ChartAnalyzer,
	distribution *domainservices.TypeDistributionAggregator,
	cfg *config.DomainConfig,
	metrics ports.CalculationMetrics,
	tracer trace.Tracer,
	logger *zap.Logger,
) *HumanDesignCalculator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("bodygraph")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HumanDesignCalculator{
		ephemeris:    ephemeris,
		analyzer:     analyzer,
		distribution: distribution,
		config:       cfg,
		metrics:      metrics,
		tracer:       tracer,
		logger:       logger,
	}
}

// sample is one run of the full pipeline
type sample struct {
	birthJD     vo.JulianDate
	designJD    vo.JulianDate
	personality []vo.GateActivation
	design      []vo.GateActivation
	analysis    *domainservices.ChartAnalysis
}

// Calculate computes the chart for input. Inputs without a birth time are
// sampled across the day and yield a probabilistic chart.
func (c *HumanDesignCalculator) Calculate(ctx context.Context, input vo.BirthInput) (chart *aggregates.Chart, err error) {
	accuracy := vo.AccuracyFull
	if !input.HasBirthTime() {
		accuracy = vo.AccuracyProbabilistic
	}

	ctx, span := c.tracer.Start(ctx, "HumanDesignCalculator.Calculate",
		trace.WithAttributes(
			attribute.String("chart.accuracy", string(accuracy)),
			attribute.String("ephemeris.provider", c.ephemeris.ProviderName()),
		))
	start := time.Now()
	defer func() {
		c.metrics.ObserveCalculation(accuracy, time.Since(start), err)
		observability.RecordError(span, err)
		span.End()
	}()

	if sc := span.SpanContext(); sc.HasTraceID() {
		ctx = common.WithTraceID(ctx, sc.TraceID().String())
	}
	logger := c.logger
	meta := common.ExtractMetadata(ctx)
	if meta.RequestID != "" {
		logger = logger.With(zap.String("request_id", meta.RequestID))
	}
	if meta.TraceID != "" {
		logger = logger.With(zap.String("trace_id", meta.TraceID))
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	if accuracy == vo.AccuracyFull {
		chart, err = c.calculateFull(input)
	} else {
		chart, err = c.calculateProbabilistic(ctx, input, logger)
	}
	if err != nil {
		pkgerrors.Log(logger, "Chart calculation failed", err,
			zap.String("accuracy", string(accuracy)))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("chart.id", chart.ID().String()),
		attribute.String("chart.type", string(chart.Type())),
	)
	logger.Debug("Chart calculated",
		zap.String("chart_id", chart.ID().String()),
		zap.String("type", string(chart.Type())),
		zap.String("accuracy", string(accuracy)),
		zap.Duration("duration", time.Since(start)),
	)
	return chart, nil
}

func (c *HumanDesignCalculator) calculateFull(input vo.BirthInput) (*aggregates.Chart, error) {
	s, err := c.runSample(input)
	if err != nil {
		return nil, err
	}
	return aggregates.NewChart(aggregates.ChartParams{
		Input:            input,
		Type:             s.analysis.Type,
		Authority:        s.analysis.Authority,
		Profile:          s.analysis.Profile,
		IncarnationCross: s.analysis.IncarnationCross,
		Definition:       s.analysis.Definition,
		PersonalityGates: s.personality,
		DesignGates:      s.design,
		Channels:         s.analysis.Channels,
		DefinedCenters:   s.analysis.DefinedCenters,
		Accuracy:         vo.AccuracyFull,
		BirthJulianDate:  s.birthJD,
		DesignJulianDate: s.designJD,
	})
}

// runSample runs the pipeline for an input whose birth time is set
func (c *HumanDesignCalculator) runSample(input vo.BirthInput) (*sample, error) {
	birthJD := BirthJulianDate(input)
	designJD, err := c.ephemeris.CalculateDesignDate(birthJD)
	if err != nil {
		return nil, err
	}

	personality, err := c.ephemeris.AllPlanetaryPositions(birthJD, vo.EpochPersonality)
	if err != nil {
		return nil, err
	}
	design, err := c.ephemeris.AllPlanetaryPositions(designJD, vo.EpochDesign)
	if err != nil {
		return nil, err
	}

	analysis, err := c.analyzer.Analyze(personality, design)
	if err != nil {
		return nil, err
	}
	return &sample{
		birthJD:     birthJD,
		designJD:    designJD,
		personality: personality,
		design:      design,
		analysis:    analysis,
	}, nil
}

// calculateProbabilistic samples every whole hour of the birth date. Each
// hour writes only its own slot, and the slots are merged by counting, so
// the result does not depend on scheduling. An hour the zone never shows
// counts as a failed sample.
func (c *HumanDesignCalculator) calculateProbabilistic(
	ctx context.Context,
	input vo.BirthInput,
	logger *zap.Logger,
) (*aggregates.Chart, error) {
	hours := c.config.SampleHours
	results := make([]*sample, hours)
	failures := make([]error, hours)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.SampleWorkers)
	for hour := 0; hour < hours; hour++ {
		hour := hour
		g.Go(func() error {
			if err := checkContext(gctx); err != nil {
				return err
			}
			sampleInput := input.AtHour(hour)
			if !sampleInput.WallClockExists() {
				// the hour is skipped by the clocks and would repeat the next one
				failures[hour] = pkgerrors.ErrNonexistentLocalTime.Clone().
					WithDetail("hour", hour).
					WithDetail("timezone", input.Timezone())
				return nil
			}
			err := pkgerrors.Recover(func() error {
				s, err := c.runSample(sampleInput)
				results[hour] = s
				return err
			})
			if err != nil {
				results[hour] = nil
				failures[hour] = err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var samples []domainservices.TypeSample
	var failedHours []int
	for hour, s := range results {
		if s == nil {
			failedHours = append(failedHours, hour)
			c.metrics.ObserveSampleFailure(hour)
			pkgerrors.Log(logger, "Skipping hourly sample", failures[hour], zap.Int("hour", hour))
			continue
		}
		samples = append(samples, domainservices.TypeSample{Hour: hour, Type: s.analysis.Type.Type})
	}

	dist, err := c.distribution.Aggregate(samples, failedHours)
	if err != nil {
		return nil, err
	}

	baselineHour := c.config.BaselineHour
	var baseline *sample
	if baselineHour < hours && results[baselineHour] != nil {
		baseline = results[baselineHour]
	} else {
		baseline, err = c.runSample(input.AtHour(baselineHour))
		if err != nil {
			return nil, err
		}
	}

	headline, err := domainservices.TypeDetailsFor(dist.MostLikely)
	if err != nil {
		return nil, err
	}

	logger.Debug("Hourly samples aggregated",
		zap.Int("valid_samples", dist.ValidSamples),
		zap.Ints("failed_hours", dist.FailedHours),
		zap.String("most_likely", string(dist.MostLikely)),
		zap.Float64("confidence", dist.Confidence),
	)

	return aggregates.NewChart(aggregates.ChartParams{
		Input:             input,
		Type:              headline,
		Authority:         baseline.analysis.Authority,
		Profile:           baseline.analysis.Profile,
		IncarnationCross:  baseline.analysis.IncarnationCross,
		Definition:        baseline.analysis.Definition,
		PersonalityGates:  baseline.personality,
		DesignGates:       baseline.design,
		Channels:          baseline.analysis.Channels,
		DefinedCenters:    baseline.analysis.DefinedCenters,
		Accuracy:          vo.AccuracyProbabilistic,
		BirthJulianDate:   baseline.birthJD,
		DesignJulianDate:  baseline.designJD,
		TypeProbabilities: &dist,
		BaselineHour:      &baselineHour,
	})
}

// checkContext maps an expired or cancelled context to a timeout error
func checkContext(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	timeout := pkgerrors.ErrCalculationTimeout.Clone().WithCause(err)
	if errors.Is(err, context.Canceled) {
		timeout = timeout.WithDetail("reason", "cancelled")
	}
	return timeout
}
