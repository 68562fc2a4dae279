package config

import (
	"errors"
	"fmt"
)

// DomainConfig holds the calculation constants of the chart engine
type DomainConfig struct {
	// Design epoch search
	DesignArcDegrees       float64
	DesignSearchOffsetDays float64
	DesignSearchSpanDays   float64
	LongitudeTolerance     float64
	MaxSearchIterations    int

	// Unknown birth time sampling
	SampleHours   int
	BaselineHour  int
	SampleWorkers int

	// Confidence buckets for the most likely type. A probability of 1.0 is
	// always "certain".
	HighConfidence   float64
	MediumConfidence float64
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		DesignArcDegrees:       88.0,
		DesignSearchOffsetDays: 100.0,
		DesignSearchSpanDays:   30.0,
		LongitudeTolerance:     1e-6,
		MaxSearchIterations:    100,

		SampleHours:   24,
		BaselineHour:  12,
		SampleWorkers: 8,

		HighConfidence:   0.75,
		MediumConfidence: 0.5,
	}
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	config := DefaultDomainConfig()
	if environment == "development" {
		// Serial sampling keeps logs readable
		config.SampleWorkers = 1
	}
	return config
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	var problems []error
	if c.DesignArcDegrees <= 0 || c.DesignArcDegrees >= 360 {
		problems = append(problems, fmt.Errorf("design arc %.3f must be in (0, 360)", c.DesignArcDegrees))
	}
	if c.DesignSearchOffsetDays <= c.DesignSearchSpanDays {
		problems = append(problems, errors.New("design search window must end before the birth date"))
	}
	if c.DesignSearchSpanDays <= 0 {
		problems = append(problems, errors.New("design search span must be positive"))
	}
	if c.LongitudeTolerance <= 0 {
		problems = append(problems, errors.New("longitude tolerance must be positive"))
	}
	if c.MaxSearchIterations < 1 {
		problems = append(problems, errors.New("max search iterations must be at least 1"))
	}
	if c.SampleHours < 1 || c.SampleHours > 24 {
		problems = append(problems, fmt.Errorf("sample hours %d must be in [1, 24]", c.SampleHours))
	}
	if c.BaselineHour < 0 || c.BaselineHour > 23 {
		problems = append(problems, fmt.Errorf("baseline hour %d must be in [0, 23]", c.BaselineHour))
	}
	if c.SampleWorkers < 1 {
		problems = append(problems, errors.New("sample workers must be at least 1"))
	}
	if !(0 < c.MediumConfidence && c.MediumConfidence < c.HighConfidence && c.HighConfidence < 1) {
		problems = append(problems, errors.New("confidence thresholds must satisfy 0 < medium < high < 1"))
	}
	return errors.Join(problems...)
}
