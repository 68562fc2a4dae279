package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/domain/config"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

func samplesOf(counts map[vo.ChartType]int) []TypeSample {
	var samples []TypeSample
	hour := 0
	for _, t := range vo.AllChartTypes() {
		for i := 0; i < counts[t]; i++ {
			samples = append(samples, TypeSample{Hour: hour, Type: t})
			hour++
		}
	}
	return samples
}

func TestAggregateTypes(t *testing.T) {
	aggregator := NewTypeDistributionAggregator(config.DefaultDomainConfig())
	samples := samplesOf(map[vo.ChartType]int{
		vo.TypeProjector:  14,
		vo.TypeGenerator:  8,
		vo.TypeManifestor: 2,
	})

	dist, err := aggregator.Aggregate(samples, nil)
	require.NoError(t, err)

	assert.Equal(t, vo.TypeProjector, dist.MostLikely)
	assert.InDelta(t, 0.583, dist.Confidence, 0.001)
	assert.InDelta(t, 0.583, dist.Probabilities[vo.TypeProjector], 0.001)
	assert.Equal(t, vo.ConfidenceMedium, dist.ConfidenceLevel)
	assert.Equal(t, 24, dist.ValidSamples)
	assert.Equal(t, 14, dist.Counts[vo.TypeProjector])

	sum := 0.0
	for _, p := range dist.Probabilities {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	aggregator := NewTypeDistributionAggregator(nil)
	samples := samplesOf(map[vo.ChartType]int{
		vo.TypeManifestingGenerator: 9,
		vo.TypeGenerator:            9,
		vo.TypeProjector:            6,
	})

	expected, err := aggregator.Aggregate(samples, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, expected.FailedHours)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]TypeSample(nil), samples...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := aggregator.Aggregate(shuffled, []int{1, 3})
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
}

func TestAggregateTieBreaksByCanonicalOrder(t *testing.T) {
	aggregator := NewTypeDistributionAggregator(nil)

	dist, err := aggregator.Aggregate(samplesOf(map[vo.ChartType]int{
		vo.TypeProjector: 12,
		vo.TypeGenerator: 12,
	}), nil)
	require.NoError(t, err)
	assert.Equal(t, vo.TypeGenerator, dist.MostLikely)
	assert.Equal(t, vo.ConfidenceMedium, dist.ConfidenceLevel)
}

func TestConfidenceLevel(t *testing.T) {
	aggregator := NewTypeDistributionAggregator(nil)

	tests := []struct {
		p        float64
		expected vo.ConfidenceLevel
	}{
		{1.0, vo.ConfidenceCertain},
		{0.99, vo.ConfidenceHigh},
		{0.75, vo.ConfidenceHigh},
		{0.74, vo.ConfidenceMedium},
		{0.5, vo.ConfidenceMedium},
		{0.49, vo.ConfidenceLow},
		{0.0, vo.ConfidenceLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, aggregator.ConfidenceLevel(tt.p), "p=%v", tt.p)
	}
}

func TestAggregateWithNoSamples(t *testing.T) {
	_, err := NewTypeDistributionAggregator(nil).Aggregate(nil, []int{0, 1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrAllSamplesFailed))
	assert.True(t, pkgerrors.IsAllSamplesFailed(err))
}
