package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

func TestCalculateProfile(t *testing.T) {
	calculator := NewProfileCalculator()

	profile, err := calculator.CalculateProfile(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "1/3", profile.Lines)
	assert.Equal(t, "Investigator / Martyr", profile.Name)
	assert.Equal(t, catalog.CrossRightAngle, profile.CrossType)

	profile, err = calculator.CalculateProfile(4, 1)
	require.NoError(t, err)
	assert.Equal(t, catalog.CrossJuxtaposition, profile.CrossType)

	profile, err = calculator.CalculateProfile(6, 2)
	require.NoError(t, err)
	assert.Equal(t, catalog.CrossLeftAngle, profile.CrossType)
}

func TestCalculateProfileMissIsInvariantViolation(t *testing.T) {
	_, err := NewProfileCalculator().CalculateProfile(2, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrLookupInvariant))
	assert.True(t, pkgerrors.IsLookupInvariant(err))
}

func TestCalculateCross(t *testing.T) {
	calculator := NewIncarnationCrossCalculator()
	gates := aggregates.CrossGates{PersonalitySun: 1, PersonalityEarth: 2, DesignSun: 7, DesignEarth: 13}

	tests := []struct {
		crossType catalog.CrossType
		name      string
	}{
		{catalog.CrossRightAngle, "Right Angle Cross of the Sphinx"},
		{catalog.CrossJuxtaposition, "Juxtaposition Cross of Self-Expression"},
		{catalog.CrossLeftAngle, "Left Angle Cross of Defiance"},
	}
	for _, tt := range tests {
		t.Run(string(tt.crossType), func(t *testing.T) {
			cross, err := calculator.CalculateCross(gates, tt.crossType)
			require.NoError(t, err)
			assert.Equal(t, tt.name, cross.Name)
			assert.Equal(t, tt.crossType, cross.CrossType)
			assert.Equal(t, gates, cross.Gates)
		})
	}

	_, err := calculator.CalculateCross(aggregates.CrossGates{PersonalitySun: 65}, catalog.CrossRightAngle)
	assert.True(t, pkgerrors.IsLookupInvariant(err))
}

func TestCrossGatesOf(t *testing.T) {
	personality := []vo.GateActivation{
		{Body: vo.Sun, Activation: vo.Activation{Gate: 1}},
		{Body: vo.Earth, Activation: vo.Activation{Gate: 2}},
	}
	design := []vo.GateActivation{
		{Body: vo.Sun, Activation: vo.Activation{Gate: 7}},
		{Body: vo.Earth, Activation: vo.Activation{Gate: 13}},
	}

	gates, err := CrossGatesOf(personality, design)
	require.NoError(t, err)
	assert.Equal(t, aggregates.CrossGates{PersonalitySun: 1, PersonalityEarth: 2, DesignSun: 7, DesignEarth: 13}, gates)

	_, err = CrossGatesOf(personality, design[:1])
	assert.True(t, pkgerrors.IsLookupInvariant(err))
}
