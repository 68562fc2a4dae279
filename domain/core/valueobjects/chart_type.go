package valueobjects

// ChartType is the five-valued energy type
type ChartType string

const (
	TypeManifestor           ChartType = "Manifestor"
	TypeGenerator            ChartType = "Generator"
	TypeManifestingGenerator ChartType = "Manifesting Generator"
	TypeProjector            ChartType = "Projector"
	TypeReflector            ChartType = "Reflector"
)

// AllChartTypes returns the types in canonical order. The order breaks
// ties when several types are equally likely.
func AllChartTypes() []ChartType {
	return []ChartType{
		TypeManifestor,
		TypeGenerator,
		TypeManifestingGenerator,
		TypeProjector,
		TypeReflector,
	}
}

// Valid reports whether t is one of the five types
func (t ChartType) Valid() bool {
	switch t {
	case TypeManifestor, TypeGenerator, TypeManifestingGenerator, TypeProjector, TypeReflector:
		return true
	default:
		return false
	}
}

// Accuracy tells whether the birth time was known
type Accuracy string

const (
	AccuracyFull          Accuracy = "full"
	AccuracyProbabilistic Accuracy = "probabilistic"
)
