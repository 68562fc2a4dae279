package services

import (
	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	"bodygraph/domain/core/entities"
	vo "bodygraph/domain/core/valueobjects"
)

// ChannelBuilder derives active channels and the center graph from gate
// activations
type ChannelBuilder struct {
	channels []entities.Channel
}

// NewChannelBuilder creates a channel builder over the static channel table
func NewChannelBuilder() *ChannelBuilder {
	return &ChannelBuilder{channels: catalog.Channels()}
}

// GateSet collects the distinct gates of the given activation sets
func GateSet(activations ...[]vo.GateActivation) map[int]struct{} {
	gates := make(map[int]struct{})
	for _, set := range activations {
		for _, a := range set {
			gates[a.Gate] = struct{}{}
		}
	}
	return gates
}

// FindActiveChannels returns the channels whose two gates both appear in
// the combined activations, in table order, and the centers they define.
// Personality and design activations are pooled; which epoch or body
// activated a gate does not matter.
func (b *ChannelBuilder) FindActiveChannels(
	activations ...[]vo.GateActivation,
) ([]entities.Channel, vo.CenterSet) {
	gates := GateSet(activations...)

	active := make([]entities.Channel, 0)
	defined := vo.NewCenterSet()
	for _, ch := range b.channels {
		if !ch.IsActive(gates) {
			continue
		}
		active = append(active, ch)
		defined.Add(ch.Centers[0])
		defined.Add(ch.Centers[1])
	}
	return active, defined
}

// BuildCenterConnections builds the undirected center graph of the given
// channels. Parallel channels between the same centers share one edge.
func (b *ChannelBuilder) BuildCenterConnections(channels []entities.Channel) (*aggregates.CenterGraph, error) {
	graph := aggregates.NewCenterGraph()
	for _, ch := range channels {
		if err := graph.Connect(ch.Centers[0], ch.Centers[1], ch.Key()); err != nil {
			return nil, err
		}
	}
	return graph, nil
}
