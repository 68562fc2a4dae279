package services

import (
	"sort"

	"bodygraph/domain/config"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// TypeSample is the outcome of one hourly sample
type TypeSample struct {
	Hour int
	Type vo.ChartType
}

// TypeDistributionAggregator merges hourly samples into a distribution
type TypeDistributionAggregator struct {
	config *config.DomainConfig
}

// NewTypeDistributionAggregator creates an aggregator using the confidence
// thresholds of cfg
func NewTypeDistributionAggregator(cfg *config.DomainConfig) *TypeDistributionAggregator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &TypeDistributionAggregator{config: cfg}
}

// ConfidenceLevel buckets the probability of the most likely type
func (a *TypeDistributionAggregator) ConfidenceLevel(p float64) vo.ConfidenceLevel {
	switch {
	case p >= 1.0:
		return vo.ConfidenceCertain
	case p >= a.config.HighConfidence:
		return vo.ConfidenceHigh
	case p >= a.config.MediumConfidence:
		return vo.ConfidenceMedium
	default:
		return vo.ConfidenceLow
	}
}

// Aggregate counts the samples by type. The result depends only on the
// multiset of samples, not on their order. Ties for most likely type go to
// the earliest type in canonical order.
func (a *TypeDistributionAggregator) Aggregate(samples []TypeSample, failedHours []int) (vo.TypeDistribution, error) {
	if len(samples) == 0 {
		return vo.TypeDistribution{}, pkgerrors.ErrAllSamplesFailed.Clone().
			WithDetail("failed_hours", len(failedHours))
	}

	counts := make(map[vo.ChartType]int)
	for _, s := range samples {
		if !s.Type.Valid() {
			return vo.TypeDistribution{}, pkgerrors.LookupMiss("chart_type", string(s.Type))
		}
		counts[s.Type]++
	}

	valid := len(samples)
	probabilities := make(map[vo.ChartType]float64, len(counts))
	var mostLikely vo.ChartType
	best := -1
	for _, t := range vo.AllChartTypes() {
		n, ok := counts[t]
		if !ok {
			continue
		}
		probabilities[t] = float64(n) / float64(valid)
		if n > best {
			best = n
			mostLikely = t
		}
	}

	failed := append([]int(nil), failedHours...)
	sort.Ints(failed)

	confidence := probabilities[mostLikely]
	return vo.TypeDistribution{
		Probabilities:   probabilities,
		Counts:          counts,
		MostLikely:      mostLikely,
		Confidence:      confidence,
		ConfidenceLevel: a.ConfidenceLevel(confidence),
		ValidSamples:    valid,
		FailedHours:     failed,
	}, nil
}
