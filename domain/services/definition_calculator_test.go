package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "bodygraph/domain/core/valueobjects"
)

func TestCalculateDefinition(t *testing.T) {
	tests := []struct {
		name  string
		gates []int
		count int
		label string
	}{
		{"none", nil, 0, "No Definition"},
		{"single", []int{20, 34, 5, 15}, 1, "Single Definition"},
		{"split", []int{4, 63, 3, 60}, 2, "Split Definition"},
		{"triple split", []int{4, 63, 3, 60, 21, 45}, 3, "Triple Split Definition"},
		{"bridged by a third channel", []int{4, 63, 23, 43, 20, 34}, 1, "Single Definition"},
	}

	calculator := NewDefinitionCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defined, graph := chartFor(t, tt.gates...)

			definition := calculator.CalculateDefinition(defined, graph)
			assert.Equal(t, tt.count, definition.Count)
			assert.Equal(t, tt.label, definition.Name)
		})
	}
}

func TestComponentsAreCanonical(t *testing.T) {
	defined, graph := chartFor(t, 3, 60, 4, 63)

	clusters := NewDefinitionCalculator().Components(defined, graph)
	assert.Equal(t, [][]vo.Center{
		{vo.CenterHead, vo.CenterAjna},
		{vo.CenterSacral, vo.CenterRoot},
	}, clusters)
}
