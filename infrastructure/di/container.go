package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bodygraph/application/ports"
	"bodygraph/application/queries"
	querybus "bodygraph/application/queries/bus"
	"bodygraph/application/services"
	"bodygraph/domain/core/aggregates"
	domainconfig "bodygraph/domain/config"
	"bodygraph/infrastructure/cache"
	"bodygraph/infrastructure/config"
	"bodygraph/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	DomainConfig *domainconfig.DomainConfig
	Logger       *zap.Logger
	Ephemeris    ports.EphemerisProvider
	Calculator   *services.HumanDesignCalculator
	QueryBus     *querybus.QueryBus
	Cache        *cache.ChartCache
	Metrics      *observability.Collector
	Tracing      *observability.TracerProvider
}

// CalculateChart asks the query bus for a chart
func (c *Container) CalculateChart(ctx context.Context, query queries.CalculateChartQuery) (*aggregates.Chart, error) {
	result, err := c.QueryBus.Ask(ctx, query)
	if err != nil {
		return nil, err
	}
	chart, ok := result.(*aggregates.Chart)
	if !ok {
		return nil, fmt.Errorf("unexpected query result %T", result)
	}
	return chart, nil
}

// Close flushes tracing and the logger
func (c *Container) Close(ctx context.Context) error {
	var errs []error
	if c.Tracing != nil {
		if err := c.Tracing.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
		}
	}
	if c.Logger != nil {
		// Sync fails on non-file sinks such as a terminal stderr
		_ = c.Logger.Sync()
	}
	return errors.Join(errs...)
}
