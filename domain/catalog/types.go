package catalog

import (
	vo "bodygraph/domain/core/valueobjects"
)

// TypeInfo is the static metadata attached to a chart type
type TypeInfo struct {
	Strategy  string
	Signature string
	NotSelf   string
	Aura      string
}

var typeInfo = map[vo.ChartType]TypeInfo{
	vo.TypeManifestor: {
		Strategy:  "To Inform",
		Signature: "Peace",
		NotSelf:   "Anger",
		Aura:      "Closed and repelling",
	},
	vo.TypeGenerator: {
		Strategy:  "To Respond",
		Signature: "Satisfaction",
		NotSelf:   "Frustration",
		Aura:      "Open and enveloping",
	},
	vo.TypeManifestingGenerator: {
		Strategy:  "To Respond, then Inform",
		Signature: "Satisfaction",
		NotSelf:   "Frustration and Anger",
		Aura:      "Open and enveloping",
	},
	vo.TypeProjector: {
		Strategy:  "Wait for the Invitation",
		Signature: "Success",
		NotSelf:   "Bitterness",
		Aura:      "Focused and absorbing",
	},
	vo.TypeReflector: {
		Strategy:  "Wait a Lunar Cycle",
		Signature: "Surprise",
		NotSelf:   "Disappointment",
		Aura:      "Resistant and sampling",
	},
}

// TypeInfoFor returns the metadata for a chart type
func TypeInfoFor(t vo.ChartType) (TypeInfo, bool) {
	info, ok := typeInfo[t]
	return info, ok
}
