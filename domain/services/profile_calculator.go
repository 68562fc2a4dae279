package services

import (
	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// ProfileCalculator looks up the profile of a Sun line pair
type ProfileCalculator struct{}

// NewProfileCalculator creates a profile calculator
func NewProfileCalculator() *ProfileCalculator {
	return &ProfileCalculator{}
}

// CalculateProfile returns the profile for the personality and design Sun
// lines
func (c *ProfileCalculator) CalculateProfile(personalityLine, designLine int) (aggregates.Profile, error) {
	key := catalog.ProfileKey{Personality: personalityLine, Design: designLine}

	name, ok := catalog.ProfileName(key)
	if !ok {
		return aggregates.Profile{}, pkgerrors.LookupMiss("profile", key.String())
	}
	crossType, ok := catalog.ProfileCrossType(key)
	if !ok {
		return aggregates.Profile{}, pkgerrors.LookupMiss("profile_cross_type", key.String())
	}

	return aggregates.Profile{
		PersonalityLine: personalityLine,
		DesignLine:      designLine,
		Lines:           key.String(),
		Name:            name,
		CrossType:       crossType,
	}, nil
}

// SunActivation finds the Sun in an activation set
func SunActivation(activations []vo.GateActivation) (vo.GateActivation, error) {
	return findBody(activations, vo.Sun)
}

func findBody(activations []vo.GateActivation, body vo.CelestialBody) (vo.GateActivation, error) {
	for _, a := range activations {
		if a.Body == body {
			return a, nil
		}
	}
	return vo.GateActivation{}, pkgerrors.LookupMiss("activation", body.String())
}
