package aggregates

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"bodygraph/domain/core/entities"
	vo "bodygraph/domain/core/valueobjects"
)

// chartNamespace scopes deterministic chart IDs
var chartNamespace = uuid.MustParse("6f1c9a52-3d0e-4b57-9a8e-2f4c1d7b8e90")

// ChartID identifies a chart. It is derived from the input, so the same
// request always yields the same ID.
type ChartID string

// NewChartID derives the ID for an input
func NewChartID(input vo.BirthInput) ChartID {
	return ChartID(uuid.NewSHA1(chartNamespace, []byte(input.Key())).String())
}

// String returns the string representation
func (id ChartID) String() string {
	return string(id)
}

// ChartParams carries everything needed to assemble a chart
type ChartParams struct {
	Input             vo.BirthInput
	Type              TypeDetails
	Authority         Authority
	Profile           Profile
	IncarnationCross  IncarnationCross
	Definition        Definition
	PersonalityGates  []vo.GateActivation
	DesignGates       []vo.GateActivation
	Channels          []entities.Channel
	DefinedCenters    vo.CenterSet
	Accuracy          vo.Accuracy
	BirthJulianDate   vo.JulianDate
	DesignJulianDate  vo.JulianDate
	TypeProbabilities *vo.TypeDistribution
	BaselineHour      *int
}

// Chart is the immutable result of a calculation. Accessors return copies.
type Chart struct {
	id                ChartID
	name              string
	typeDetails       TypeDetails
	authority         Authority
	profile           Profile
	incarnationCross  IncarnationCross
	definition        Definition
	personalityGates  []vo.GateActivation
	designGates       []vo.GateActivation
	channels          []entities.Channel
	definedCenters    []vo.Center
	undefinedCenters  []vo.Center
	accuracy          vo.Accuracy
	birthJulianDate   vo.JulianDate
	designJulianDate  vo.JulianDate
	typeProbabilities *vo.TypeDistribution
	baselineHour      *int
}

// NewChart assembles a chart, checking the fields that must agree
func NewChart(p ChartParams) (*Chart, error) {
	if !p.Type.Type.Valid() {
		return nil, errors.New("chart type is invalid")
	}
	switch p.Accuracy {
	case vo.AccuracyFull:
		if p.TypeProbabilities != nil {
			return nil, errors.New("full accuracy chart cannot carry type probabilities")
		}
	case vo.AccuracyProbabilistic:
		if p.TypeProbabilities == nil {
			return nil, errors.New("probabilistic chart requires type probabilities")
		}
	default:
		return nil, errors.New("chart accuracy is invalid")
	}
	if p.DefinedCenters == nil {
		p.DefinedCenters = vo.NewCenterSet()
	}

	chart := &Chart{
		id:               NewChartID(p.Input),
		name:             p.Input.Name(),
		typeDetails:      p.Type,
		authority:        p.Authority,
		profile:          p.Profile,
		incarnationCross: p.IncarnationCross,
		definition:       p.Definition,
		personalityGates: append([]vo.GateActivation(nil), p.PersonalityGates...),
		designGates:      append([]vo.GateActivation(nil), p.DesignGates...),
		channels:         append([]entities.Channel(nil), p.Channels...),
		definedCenters:   p.DefinedCenters.Sorted(),
		undefinedCenters: p.DefinedCenters.Complement(),
		accuracy:         p.Accuracy,
		birthJulianDate:  p.BirthJulianDate,
		designJulianDate: p.DesignJulianDate,
	}
	if p.TypeProbabilities != nil {
		dist := p.TypeProbabilities.Clone()
		chart.typeProbabilities = &dist
	}
	if p.BaselineHour != nil {
		hour := *p.BaselineHour
		chart.baselineHour = &hour
	}
	return chart, nil
}

// ID returns the chart's deterministic identifier
func (c *Chart) ID() ChartID {
	return c.id
}

// Name returns the opaque name from the input
func (c *Chart) Name() string {
	return c.name
}

// Type returns the chart type
func (c *Chart) Type() vo.ChartType {
	return c.typeDetails.Type
}

// TypeDetails returns the type with its strategy, signature and aura
func (c *Chart) TypeDetails() TypeDetails {
	return c.typeDetails
}

// Strategy returns the strategy for the chart type
func (c *Chart) Strategy() string {
	return c.typeDetails.Strategy
}

// Authority returns the inner authority
func (c *Chart) Authority() Authority {
	return c.authority
}

// Profile returns the profile
func (c *Chart) Profile() Profile {
	return c.profile
}

// IncarnationCross returns the incarnation cross
func (c *Chart) IncarnationCross() IncarnationCross {
	return c.incarnationCross
}

// Definition returns the definition
func (c *Chart) Definition() Definition {
	return c.definition
}

// PersonalityGates returns the birth-epoch activations in body order
func (c *Chart) PersonalityGates() []vo.GateActivation {
	return append([]vo.GateActivation(nil), c.personalityGates...)
}

// DesignGates returns the design-epoch activations in body order
func (c *Chart) DesignGates() []vo.GateActivation {
	return append([]vo.GateActivation(nil), c.designGates...)
}

// Channels returns the active channels in table order
func (c *Chart) Channels() []entities.Channel {
	return append([]entities.Channel(nil), c.channels...)
}

// DefinedCenters returns the defined centers in canonical order
func (c *Chart) DefinedCenters() []vo.Center {
	return append([]vo.Center(nil), c.definedCenters...)
}

// UndefinedCenters returns the open centers in canonical order
func (c *Chart) UndefinedCenters() []vo.Center {
	return append([]vo.Center(nil), c.undefinedCenters...)
}

// Accuracy reports whether the birth time was known
func (c *Chart) Accuracy() vo.Accuracy {
	return c.accuracy
}

// BirthJulianDate returns the personality epoch
func (c *Chart) BirthJulianDate() vo.JulianDate {
	return c.birthJulianDate
}

// DesignJulianDate returns the design epoch
func (c *Chart) DesignJulianDate() vo.JulianDate {
	return c.designJulianDate
}

// TypeProbabilities returns the hourly type distribution of a
// probabilistic chart
func (c *Chart) TypeProbabilities() (vo.TypeDistribution, bool) {
	if c.typeProbabilities == nil {
		return vo.TypeDistribution{}, false
	}
	return c.typeProbabilities.Clone(), true
}

// BaselineHour returns the local hour the display fields of a
// probabilistic chart were computed for
func (c *Chart) BaselineHour() (int, bool) {
	if c.baselineHour == nil {
		return 0, false
	}
	return *c.baselineHour, true
}

type chartJSON struct {
	ID                ChartID              `json:"id"`
	Name              string               `json:"name"`
	Type              vo.ChartType         `json:"type"`
	Strategy          string               `json:"strategy"`
	Signature         string               `json:"signature"`
	NotSelf           string               `json:"not_self"`
	Aura              string               `json:"aura"`
	Authority         Authority            `json:"authority"`
	Profile           Profile              `json:"profile"`
	IncarnationCross  IncarnationCross     `json:"incarnation_cross"`
	Definition        Definition           `json:"definition"`
	PersonalityGates  []vo.GateActivation  `json:"personality_gates"`
	DesignGates       []vo.GateActivation  `json:"design_gates"`
	Channels          []entities.Channel   `json:"channels"`
	DefinedCenters    []vo.Center          `json:"defined_centers"`
	UndefinedCenters  []vo.Center          `json:"undefined_centers"`
	Accuracy          vo.Accuracy          `json:"accuracy"`
	BirthJulianDate   float64              `json:"birth_julian_date"`
	DesignJulianDate  float64              `json:"design_julian_date"`
	TypeProbabilities *vo.TypeDistribution `json:"type_probabilities,omitempty"`
	BaselineHour      *int                 `json:"baseline_hour,omitempty"`
}

// MarshalJSON implements json.Marshaler. Field and element order are fixed,
// so equal charts encode to identical bytes.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartJSON{
		ID:                c.id,
		Name:              c.name,
		Type:              c.typeDetails.Type,
		Strategy:          c.typeDetails.Strategy,
		Signature:         c.typeDetails.Signature,
		NotSelf:           c.typeDetails.NotSelf,
		Aura:              c.typeDetails.Aura,
		Authority:         c.authority,
		Profile:           c.profile,
		IncarnationCross:  c.incarnationCross,
		Definition:        c.definition,
		PersonalityGates:  nonNilActivations(c.personalityGates),
		DesignGates:       nonNilActivations(c.designGates),
		Channels:          nonNilChannels(c.channels),
		DefinedCenters:    nonNilCenters(c.definedCenters),
		UndefinedCenters:  nonNilCenters(c.undefinedCenters),
		Accuracy:          c.accuracy,
		BirthJulianDate:   c.birthJulianDate.Float(),
		DesignJulianDate:  c.designJulianDate.Float(),
		TypeProbabilities: c.typeProbabilities,
		BaselineHour:      c.baselineHour,
	})
}

func nonNilActivations(in []vo.GateActivation) []vo.GateActivation {
	if in == nil {
		return []vo.GateActivation{}
	}
	return in
}

func nonNilChannels(in []entities.Channel) []entities.Channel {
	if in == nil {
		return []entities.Channel{}
	}
	return in
}

func nonNilCenters(in []vo.Center) []vo.Center {
	if in == nil {
		return []vo.Center{}
	}
	return in
}
