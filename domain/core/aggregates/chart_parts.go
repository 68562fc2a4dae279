package aggregates

import (
	"bodygraph/domain/catalog"
	vo "bodygraph/domain/core/valueobjects"
)

// TypeDetails is a chart type together with its static metadata
type TypeDetails struct {
	Type      vo.ChartType `json:"type"`
	Strategy  string       `json:"strategy"`
	Signature string       `json:"signature"`
	NotSelf   string       `json:"not_self"`
	Aura      string       `json:"aura"`
}

// Authority is the decision-making authority of a chart
type Authority struct {
	Code catalog.AuthorityCode `json:"code"`
	Name string                `json:"name"`
}

// Profile is the personality/design Sun line pair
type Profile struct {
	PersonalityLine int               `json:"personality_line"`
	DesignLine      int               `json:"design_line"`
	Lines           string            `json:"lines"`
	Name            string            `json:"name"`
	CrossType       catalog.CrossType `json:"cross_type"`
}

// CrossGates are the four gates that make up an incarnation cross
type CrossGates struct {
	PersonalitySun   int `json:"personality_sun"`
	PersonalityEarth int `json:"personality_earth"`
	DesignSun        int `json:"design_sun"`
	DesignEarth      int `json:"design_earth"`
}

// IncarnationCross is the life-purpose cross selected by Sun gate and
// cross type
type IncarnationCross struct {
	Name      string            `json:"name"`
	CrossType catalog.CrossType `json:"cross_type"`
	Gates     CrossGates        `json:"gates"`
}

// Definition describes how the defined centers cluster
type Definition struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}
