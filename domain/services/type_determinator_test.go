package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "bodygraph/domain/core/valueobjects"
)

func TestDetermineType(t *testing.T) {
	tests := []struct {
		name     string
		gates    []int
		expected vo.ChartType
	}{
		{"no definition", nil, vo.TypeReflector},
		{"sacral unconnected to throat", []int{3, 60}, vo.TypeGenerator},
		{"sacral connected to throat", []int{20, 34}, vo.TypeManifestingGenerator},
		{"sacral through g to throat", []int{5, 15, 1, 8}, vo.TypeManifestingGenerator},
		{"heart connected to throat", []int{21, 45}, vo.TypeManifestor},
		{"heart through g to throat", []int{25, 51, 13, 33}, vo.TypeManifestor},
		{"heart through spleen to throat", []int{26, 44, 16, 48}, vo.TypeManifestor},
		{"solar plexus connected to throat", []int{12, 22}, vo.TypeManifestor},
		{"root through spleen to throat", []int{18, 58, 20, 57}, vo.TypeManifestor},
		{"root through spleen and g to throat", []int{28, 38, 10, 57, 7, 31}, vo.TypeManifestor},
		{"g to throat without motor", []int{1, 8}, vo.TypeProjector},
		{"heart to g without throat", []int{25, 51}, vo.TypeProjector},
		{"head and ajna", []int{4, 63}, vo.TypeProjector},
		{"spleen to throat without motor", []int{16, 48}, vo.TypeProjector},
	}

	determinator := NewTypeDeterminator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defined, graph := chartFor(t, tt.gates...)

			details, err := determinator.DetermineType(defined, graph)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, details.Type)
			assert.NotEmpty(t, details.Strategy)
			assert.NotEmpty(t, details.Signature)
		})
	}
}

func TestIsConnected(t *testing.T) {
	_, graph := chartFor(t, 25, 51, 13, 33)

	assert.True(t, IsConnected(graph, vo.CenterHeart, vo.CenterG))
	assert.True(t, IsConnected(graph, vo.CenterHeart, vo.CenterG, vo.CenterThroat))
	assert.True(t, IsConnected(graph, vo.CenterThroat, vo.CenterG, vo.CenterHeart))
	assert.False(t, IsConnected(graph, vo.CenterHeart, vo.CenterThroat))
	assert.False(t, IsConnected(graph, vo.CenterHeart))
	assert.False(t, IsConnected(nil, vo.CenterHeart, vo.CenterG))
}

func TestHasMotorToThroatRequiresDefinedMotor(t *testing.T) {
	defined, graph := chartFor(t, 21, 45)
	assert.True(t, HasMotorToThroat(defined, graph))

	delete(defined, vo.CenterHeart)
	assert.False(t, HasMotorToThroat(defined, graph))
}

func TestTypeDetailsFor(t *testing.T) {
	details, err := TypeDetailsFor(vo.TypeGenerator)
	require.NoError(t, err)
	assert.Equal(t, "To Respond", details.Strategy)

	_, err = TypeDetailsFor(vo.ChartType("Oracle"))
	require.Error(t, err)
}
