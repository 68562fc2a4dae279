package services

import (
	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
)

// DefinitionCalculator counts how the defined centers cluster
type DefinitionCalculator struct{}

// NewDefinitionCalculator creates a definition calculator
func NewDefinitionCalculator() *DefinitionCalculator {
	return &DefinitionCalculator{}
}

// CalculateDefinition counts connected components of the subgraph induced by
// the defined centers
func (c *DefinitionCalculator) CalculateDefinition(
	defined vo.CenterSet,
	graph *aggregates.CenterGraph,
) aggregates.Definition {
	count := len(c.Components(defined, graph))
	return aggregates.Definition{
		Count: count,
		Name:  catalog.DefinitionName(count),
	}
}

// Components returns the clusters of defined centers, each in canonical
// order, ordered by their first center
func (c *DefinitionCalculator) Components(
	defined vo.CenterSet,
	graph *aggregates.CenterGraph,
) [][]vo.Center {
	visited := make(map[vo.Center]bool, defined.Len())
	var clusters [][]vo.Center

	for _, center := range defined.Sorted() {
		if visited[center] {
			continue
		}
		members := vo.NewCenterSet(c.dfs(defined, graph, center, visited)...)
		clusters = append(clusters, members.Sorted())
	}
	return clusters
}

func (c *DefinitionCalculator) dfs(
	defined vo.CenterSet,
	graph *aggregates.CenterGraph,
	center vo.Center,
	visited map[vo.Center]bool,
) []vo.Center {
	cluster := []vo.Center{center}
	visited[center] = true

	if graph == nil {
		return cluster
	}
	for _, next := range graph.Neighbors(center) {
		if !defined.Has(next) || visited[next] {
			continue
		}
		cluster = append(cluster, c.dfs(defined, graph, next, visited)...)
	}
	return cluster
}
