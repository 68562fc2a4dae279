package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/domain/catalog"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

func epochSet(epoch vo.Epoch, sunGate, sunLine, earthGate, earthLine int, others ...int) []vo.GateActivation {
	set := []vo.GateActivation{
		{Body: vo.Sun, Epoch: epoch, Activation: vo.Activation{Gate: sunGate, Line: sunLine, Color: 1, Tone: 1, Base: 1}},
		{Body: vo.Earth, Epoch: epoch, Activation: vo.Activation{Gate: earthGate, Line: earthLine, Color: 1, Tone: 1, Base: 1}},
	}
	for i, g := range others {
		set = append(set, vo.GateActivation{
			Body:       vo.CelestialBody(int(vo.Moon) + i),
			Epoch:      epoch,
			Activation: vo.Activation{Gate: g, Line: 1, Color: 1, Tone: 1, Base: 1},
		})
	}
	return set
}

func TestAnalyze(t *testing.T) {
	analyzer := NewDefaultChartAnalyzer()

	// Sun 1 and Earth 2 at birth, Sun 7 and Earth 13 at design; 8 completes
	// 1-8 and 31 completes 7-31
	personality := epochSet(vo.EpochPersonality, 1, 1, 2, 1, 8)
	design := epochSet(vo.EpochDesign, 7, 3, 13, 3, 31)

	analysis, err := analyzer.Analyze(personality, design)
	require.NoError(t, err)

	assert.Equal(t, vo.TypeProjector, analysis.Type.Type)
	assert.Equal(t, catalog.AuthoritySelfProjected, analysis.Authority.Code)
	assert.Equal(t, 1, analysis.Definition.Count)
	assert.Equal(t, "1/3", analysis.Profile.Lines)
	assert.Equal(t, "Right Angle Cross of the Sphinx", analysis.IncarnationCross.Name)
	assert.Equal(t, 7, analysis.IncarnationCross.Gates.DesignSun)
	assert.Len(t, analysis.Channels, 2)
	assert.Equal(t, []vo.Center{vo.CenterThroat, vo.CenterG}, analysis.DefinedCenters.Sorted())
}

func TestAnalyzeRejectsImpossibleProfile(t *testing.T) {
	personality := epochSet(vo.EpochPersonality, 1, 2, 2, 2)
	design := epochSet(vo.EpochDesign, 7, 2, 13, 2)

	_, err := NewDefaultChartAnalyzer().Analyze(personality, design)
	assert.True(t, pkgerrors.IsLookupInvariant(err))
}

func TestAnalyzeRequiresSun(t *testing.T) {
	personality := epochSet(vo.EpochPersonality, 1, 1, 2, 1)[1:]
	design := epochSet(vo.EpochDesign, 7, 3, 13, 3)

	_, err := NewDefaultChartAnalyzer().Analyze(personality, design)
	assert.True(t, pkgerrors.IsLookupInvariant(err))
}
