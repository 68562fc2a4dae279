package services

import (
	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// IncarnationCrossCalculator picks the cross for a Sun gate and cross type
type IncarnationCrossCalculator struct{}

// NewIncarnationCrossCalculator creates an incarnation cross calculator
func NewIncarnationCrossCalculator() *IncarnationCrossCalculator {
	return &IncarnationCrossCalculator{}
}

// CrossGatesOf collects the Sun and Earth gates of both epochs
func CrossGatesOf(personality, design []vo.GateActivation) (aggregates.CrossGates, error) {
	var gates aggregates.CrossGates
	targets := []struct {
		set  []vo.GateActivation
		body vo.CelestialBody
		dst  *int
	}{
		{personality, vo.Sun, &gates.PersonalitySun},
		{personality, vo.Earth, &gates.PersonalityEarth},
		{design, vo.Sun, &gates.DesignSun},
		{design, vo.Earth, &gates.DesignEarth},
	}
	for _, t := range targets {
		a, err := findBody(t.set, t.body)
		if err != nil {
			return aggregates.CrossGates{}, err
		}
		*t.dst = a.Gate
	}
	return gates, nil
}

// CalculateCross selects the cross named for the personality Sun gate in the
// variant matching crossType
func (c *IncarnationCrossCalculator) CalculateCross(
	gates aggregates.CrossGates,
	crossType catalog.CrossType,
) (aggregates.IncarnationCross, error) {
	names, ok := catalog.CrossesForGate(gates.PersonalitySun)
	if !ok {
		return aggregates.IncarnationCross{}, pkgerrors.LookupMiss("incarnation_cross", gates.PersonalitySun)
	}
	name, ok := names.For(crossType)
	if !ok {
		return aggregates.IncarnationCross{}, pkgerrors.LookupMiss("cross_type", string(crossType))
	}
	return aggregates.IncarnationCross{
		Name:      name,
		CrossType: crossType,
		Gates:     gates,
	}, nil
}
