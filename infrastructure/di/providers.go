package di

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bodygraph/application/ports"
	"bodygraph/application/queries"
	querybus "bodygraph/application/queries/bus"
	queries_handlers "bodygraph/application/queries/handlers"
	"bodygraph/application/services"
	"bodygraph/domain/catalog"
	domainconfig "bodygraph/domain/config"
	domainservices "bodygraph/domain/services"
	"bodygraph/infrastructure/cache"
	"bodygraph/infrastructure/config"
	"bodygraph/infrastructure/ephemeris"
	"bodygraph/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("environment", cfg.Environment)), nil
}

// ProvideDomainConfig loads the calculation constants for the environment
func ProvideDomainConfig(cfg *config.Config) (*domainconfig.DomainConfig, error) {
	domainCfg := domainconfig.LoadDomainConfig(cfg.Environment)
	if cfg.SampleWorkers > 0 {
		domainCfg.SampleWorkers = cfg.SampleWorkers
	}
	if err := domainCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid domain config: %w", err)
	}
	return domainCfg, nil
}

// ProvideEphemerisProvider creates the configured ephemeris backend
func ProvideEphemerisProvider(cfg *config.Config, logger *zap.Logger) (ports.EphemerisProvider, error) {
	provider, err := ephemeris.NewProvider(ephemeris.Config{
		Backend:    ephemeris.Backend(cfg.EphemerisBackend),
		VSOP87Path: cfg.VSOP87Path,
	})
	if err != nil {
		return nil, err
	}

	minJD, maxJD := provider.Range()
	logger.Info("Ephemeris provider ready",
		zap.String("backend", provider.Name()),
		zap.Float64("min_jd", float64(minJD)),
		zap.Float64("max_jd", float64(maxJD)),
	)
	if !provider.Precise() {
		logger.Warn("Ephemeris backend is not precise to 0.01 degrees, outer planet lines and colors may be wrong",
			zap.String("backend", provider.Name()),
		)
	}
	return provider, nil
}

// ProvideEphemerisCalculator creates the ephemeris calculator
func ProvideEphemerisCalculator(
	provider ports.EphemerisProvider,
	domainCfg *domainconfig.DomainConfig,
) *services.EphemerisCalculator {
	return services.NewEphemerisCalculator(provider, domainCfg)
}

// ProvideChartAnalyzer checks the static tables and creates the analyzer.
// A table inconsistency stops the container from starting.
func ProvideChartAnalyzer() (*domainservices.ChartAnalyzer, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return domainservices.NewDefaultChartAnalyzer(), nil
}

// ProvideTypeDistributionAggregator creates the probabilistic aggregator
func ProvideTypeDistributionAggregator(domainCfg *domainconfig.DomainConfig) *domainservices.TypeDistributionAggregator {
	return domainservices.NewTypeDistributionAggregator(domainCfg)
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("bodygraph")
}

// ProvideCalculationMetrics returns the collector when metrics are enabled
func ProvideCalculationMetrics(cfg *config.Config, collector *observability.Collector) ports.CalculationMetrics {
	if !cfg.EnableMetrics {
		return ports.NoopMetrics{}
	}
	return collector
}

// ProvideTracerProvider initializes tracing
func ProvideTracerProvider(ctx context.Context, cfg *config.Config) (*observability.TracerProvider, error) {
	return observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.EnableTracing,
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Endpoint:    cfg.OTLPEndpoint,
		SampleRate:  cfg.TraceSampleRate,
	})
}

// ProvideTracer returns the tracer calculations start spans on
func ProvideTracer(tp *observability.TracerProvider) trace.Tracer {
	return tp.Tracer()
}

// ProvideHumanDesignCalculator creates the chart calculator
func ProvideHumanDesignCalculator(
	ephemerisCalc *services.EphemerisCalculator,
	analyzer *domainservices.ChartAnalyzer,
	aggregator *domainservices.TypeDistributionAggregator,
	domainCfg *domainconfig.DomainConfig,
	metrics ports.CalculationMetrics,
	tracer trace.Tracer,
	logger *zap.Logger,
) *services.HumanDesignCalculator {
	return services.NewHumanDesignCalculator(
		ephemerisCalc,
		analyzer,
		aggregator,
		domainCfg,
		metrics,
		tracer,
		logger.Named("calculator"),
	)
}

// ProvideChartCache creates the LRU chart cache. It returns nil when caching
// is disabled.
func ProvideChartCache(cfg *config.Config, collector *observability.Collector) (*cache.ChartCache, error) {
	if !cfg.CacheEnabled() {
		return nil, nil
	}
	var recorder cache.HitRecorder
	if cfg.EnableMetrics {
		recorder = collector
	}
	return cache.NewChartCache(cache.Config{
		MaxSize: cfg.ChartCacheSize,
		TTL:     time.Duration(cfg.ChartCacheTTLSeconds) * time.Second,
	}, recorder)
}

// busMetrics adapts the collector to the query bus metrics interface
type busMetrics struct {
	collector *observability.Collector
}

func (m busMetrics) StartTimer(metric, label string) querybus.Timer {
	return m.collector.StartTimer(metric, label)
}

func (m busMetrics) Increment(metric, label string) {
	m.collector.Increment(metric, label)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	cfg *config.Config,
	calculator *services.HumanDesignCalculator,
	chartCache *cache.ChartCache,
	collector *observability.Collector,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	middleware := []querybus.Middleware{querybus.NewLoggingMiddleware(logger.Named("query_bus"))}
	if cfg.EnableMetrics {
		middleware = append(middleware, querybus.NewMetricsMiddleware(busMetrics{collector: collector}))
	}
	if chartCache != nil {
		middleware = append(middleware, querybus.NewCachingMiddleware(chartCache, cfg.ChartCacheTTLSeconds, logger))
	}

	queryBus := querybus.NewQueryBus(middleware...)

	handler := queries_handlers.NewCalculateChartHandler(calculator, logger.Named("calculate_chart"))
	if err := queryBus.Register(queries.CalculateChartQuery{}, handler); err != nil {
		return nil, err
	}

	return queryBus, nil
}
