//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"bodygraph/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideEphemerisProvider,
	ProvideEphemerisCalculator,
	ProvideChartAnalyzer,
	ProvideTypeDistributionAggregator,
	ProvideMetrics,
	ProvideCalculationMetrics,
	ProvideTracerProvider,
	ProvideTracer,
	ProvideHumanDesignCalculator,
	ProvideChartCache,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
