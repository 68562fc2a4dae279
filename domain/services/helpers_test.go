package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
)

// activations builds personality activations carrying the given gates.
// Bodies are assigned in order; only the gate matters for channel logic.
func activations(gates ...int) []vo.GateActivation {
	out := make([]vo.GateActivation, 0, len(gates))
	for i, g := range gates {
		out = append(out, vo.GateActivation{
			Body:       vo.CelestialBody(i % vo.BodyCount),
			Epoch:      vo.EpochPersonality,
			Activation: vo.Activation{Gate: g, Line: 1, Color: 1, Tone: 1, Base: 1},
		})
	}
	return out
}

// chartFor runs the channel builder over gates and returns the defined
// centers and center graph
func chartFor(t *testing.T, gates ...int) (vo.CenterSet, *aggregates.CenterGraph) {
	t.Helper()
	builder := NewChannelBuilder()
	channels, defined := builder.FindActiveChannels(activations(gates...))
	graph, err := builder.BuildCenterConnections(channels)
	require.NoError(t, err)
	return defined, graph
}
