package services

import (
	"bodygraph/domain/core/aggregates"
	"bodygraph/domain/core/entities"
	vo "bodygraph/domain/core/valueobjects"
)

// ChartAnalysis is every classification derived from one pair of
// activation sets
type ChartAnalysis struct {
	Channels         []entities.Channel
	DefinedCenters   vo.CenterSet
	Graph            *aggregates.CenterGraph
	Type             aggregates.TypeDetails
	Authority        aggregates.Authority
	Definition       aggregates.Definition
	Profile          aggregates.Profile
	IncarnationCross aggregates.IncarnationCross
}

// ChartAnalyzer runs the channel builder and all classifiers over a pair of
// activation sets
type ChartAnalyzer struct {
	channels   *ChannelBuilder
	types      *TypeDeterminator
	authority  *AuthorityDeterminator
	definition *DefinitionCalculator
	profile    *ProfileCalculator
	cross      *IncarnationCrossCalculator
}

// NewChartAnalyzer creates a chart analyzer
func NewChartAnalyzer(
	channels *ChannelBuilder,
	types *TypeDeterminator,
	authority *AuthorityDeterminator,
	definition *DefinitionCalculator,
	profile *ProfileCalculator,
	cross *IncarnationCrossCalculator,
) *ChartAnalyzer {
	return &ChartAnalyzer{
		channels:   channels,
		types:      types,
		authority:  authority,
		definition: definition,
		profile:    profile,
		cross:      cross,
	}
}

// NewDefaultChartAnalyzer wires an analyzer with fresh services
func NewDefaultChartAnalyzer() *ChartAnalyzer {
	return NewChartAnalyzer(
		NewChannelBuilder(),
		NewTypeDeterminator(),
		NewAuthorityDeterminator(),
		NewDefinitionCalculator(),
		NewProfileCalculator(),
		NewIncarnationCrossCalculator(),
	)
}

// Analyze classifies the chart described by the personality and design
// activations
func (a *ChartAnalyzer) Analyze(personality, design []vo.GateActivation) (*ChartAnalysis, error) {
	channels, defined := a.channels.FindActiveChannels(personality, design)
	graph, err := a.channels.BuildCenterConnections(channels)
	if err != nil {
		return nil, err
	}

	chartType, err := a.types.DetermineType(defined, graph)
	if err != nil {
		return nil, err
	}
	authority, err := a.authority.DetermineAuthority(defined, graph)
	if err != nil {
		return nil, err
	}
	definition := a.definition.CalculateDefinition(defined, graph)

	personalitySun, err := SunActivation(personality)
	if err != nil {
		return nil, err
	}
	designSun, err := SunActivation(design)
	if err != nil {
		return nil, err
	}
	profile, err := a.profile.CalculateProfile(personalitySun.Line, designSun.Line)
	if err != nil {
		return nil, err
	}

	crossGates, err := CrossGatesOf(personality, design)
	if err != nil {
		return nil, err
	}
	cross, err := a.cross.CalculateCross(crossGates, profile.CrossType)
	if err != nil {
		return nil, err
	}

	return &ChartAnalysis{
		Channels:         channels,
		DefinedCenters:   defined,
		Graph:            graph,
		Type:             chartType,
		Authority:        authority,
		Definition:       definition,
		Profile:          profile,
		IncarnationCross: cross,
	}, nil
}
