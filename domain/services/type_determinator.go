package services

import (
	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// motorRoutes lists every path by which a motor reaches the Throat. The
// first center of each route is the motor.
var motorRoutes = [][]vo.Center{
	{vo.CenterSacral, vo.CenterThroat},
	{vo.CenterSacral, vo.CenterG, vo.CenterThroat},
	{vo.CenterHeart, vo.CenterThroat},
	{vo.CenterHeart, vo.CenterG, vo.CenterThroat},
	{vo.CenterHeart, vo.CenterSpleen, vo.CenterThroat},
	{vo.CenterSolarPlexus, vo.CenterThroat},
	{vo.CenterSolarPlexus, vo.CenterG, vo.CenterThroat},
	{vo.CenterRoot, vo.CenterSpleen, vo.CenterThroat},
	{vo.CenterRoot, vo.CenterSpleen, vo.CenterG, vo.CenterThroat},
}

// TypeDeterminator classifies a chart's type from its center graph
type TypeDeterminator struct{}

// NewTypeDeterminator creates a type determinator
func NewTypeDeterminator() *TypeDeterminator {
	return &TypeDeterminator{}
}

// IsConnected reports whether each consecutive pair of centers is directly
// adjacent. Fewer than two centers never form a connection.
func IsConnected(graph *aggregates.CenterGraph, centers ...vo.Center) bool {
	if graph == nil || len(centers) < 2 {
		return false
	}
	for i := 0; i+1 < len(centers); i++ {
		if !graph.Adjacent(centers[i], centers[i+1]) {
			return false
		}
	}
	return true
}

// HasMotorToThroat reports whether a defined motor reaches the Throat by one
// of the recognised routes
func HasMotorToThroat(defined vo.CenterSet, graph *aggregates.CenterGraph) bool {
	for _, route := range motorRoutes {
		if defined.Has(route[0]) && IsConnected(graph, route...) {
			return true
		}
	}
	return false
}

// DetermineType applies the type priority: Reflector, Manifesting
// Generator, Generator, Manifestor, Projector
func (d *TypeDeterminator) DetermineType(
	defined vo.CenterSet,
	graph *aggregates.CenterGraph,
) (aggregates.TypeDetails, error) {
	var chartType vo.ChartType
	motor := HasMotorToThroat(defined, graph)

	switch {
	case defined.Len() == 0:
		chartType = vo.TypeReflector
	case defined.Has(vo.CenterSacral) && motor:
		chartType = vo.TypeManifestingGenerator
	case defined.Has(vo.CenterSacral):
		chartType = vo.TypeGenerator
	case motor:
		chartType = vo.TypeManifestor
	default:
		chartType = vo.TypeProjector
	}

	return TypeDetailsFor(chartType)
}

// TypeDetailsFor attaches the static metadata of a chart type
func TypeDetailsFor(chartType vo.ChartType) (aggregates.TypeDetails, error) {
	info, ok := catalog.TypeInfoFor(chartType)
	if !ok {
		return aggregates.TypeDetails{}, pkgerrors.LookupMiss("type_info", string(chartType))
	}
	return aggregates.TypeDetails{
		Type:      chartType,
		Strategy:  info.Strategy,
		Signature: info.Signature,
		NotSelf:   info.NotSelf,
		Aura:      info.Aura,
	}, nil
}
