package aggregates

import (
	"errors"
	"sort"

	vo "bodygraph/domain/core/valueobjects"
)

// CenterEdge is an undirected link between two centers together with the
// keys of the active channels that produce it
type CenterEdge struct {
	From     vo.Center `json:"from"`
	To       vo.Center `json:"to"`
	Channels []string  `json:"channels"`
}

// CenterGraph is the undirected adjacency over the nine centers induced by
// the active channels. Several channels between one pair collapse into a
// single edge.
type CenterGraph struct {
	adjacency map[vo.Center]map[vo.Center][]string
}

// NewCenterGraph creates an empty graph over the nine centers
func NewCenterGraph() *CenterGraph {
	adjacency := make(map[vo.Center]map[vo.Center][]string, vo.CenterCount)
	for _, c := range vo.AllCenters() {
		adjacency[c] = make(map[vo.Center][]string)
	}
	return &CenterGraph{adjacency: adjacency}
}

// Connect records that channelKey links a and b
func (g *CenterGraph) Connect(a, b vo.Center, channelKey string) error {
	if !a.Valid() || !b.Valid() {
		return errors.New("both centers must be valid")
	}
	if a == b {
		return errors.New("cannot connect center to itself")
	}

	g.adjacency[a][b] = appendUnique(g.adjacency[a][b], channelKey)
	g.adjacency[b][a] = appendUnique(g.adjacency[b][a], channelKey)
	return nil
}

func appendUnique(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

// Adjacent reports whether a direct edge joins a and b
func (g *CenterGraph) Adjacent(a, b vo.Center) bool {
	nbs, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = nbs[b]
	return ok
}

// Neighbors returns the centers adjacent to c in canonical order
func (g *CenterGraph) Neighbors(c vo.Center) []vo.Center {
	nbs := g.adjacency[c]
	out := make([]vo.Center, 0, len(nbs))
	for _, n := range vo.AllCenters() {
		if _, ok := nbs[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Degree returns the number of distinct centers adjacent to c
func (g *CenterGraph) Degree(c vo.Center) int {
	return len(g.adjacency[c])
}

// EdgeCount returns the number of undirected edges
func (g *CenterGraph) EdgeCount() int {
	n := 0
	for _, nbs := range g.adjacency {
		n += len(nbs)
	}
	return n / 2
}

// ConnectedCenters returns every center with at least one edge
func (g *CenterGraph) ConnectedCenters() vo.CenterSet {
	set := vo.NewCenterSet()
	for c, nbs := range g.adjacency {
		if len(nbs) > 0 {
			set.Add(c)
		}
	}
	return set
}

// Edges returns each undirected edge once, ordered by canonical center
// order of its endpoints
func (g *CenterGraph) Edges() []CenterEdge {
	var edges []CenterEdge
	for _, a := range vo.AllCenters() {
		for _, b := range g.Neighbors(a) {
			if a.Index() >= b.Index() {
				continue
			}
			keys := append([]string(nil), g.adjacency[a][b]...)
			sort.Strings(keys)
			edges = append(edges, CenterEdge{From: a, To: b, Channels: keys})
		}
	}
	return edges
}

// AdjacencyMap returns a copy of the adjacency as center to neighbors
func (g *CenterGraph) AdjacencyMap() map[vo.Center][]vo.Center {
	out := make(map[vo.Center][]vo.Center, len(g.adjacency))
	for _, c := range vo.AllCenters() {
		out[c] = g.Neighbors(c)
	}
	return out
}
