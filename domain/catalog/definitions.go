package catalog

// definitionNames is indexed by connected component count. Counts past the
// end use the last entry.
var definitionNames = []string{
	"No Definition",
	"Single Definition",
	"Split Definition",
	"Triple Split Definition",
	"Quadruple Split Definition",
}

// DefinitionName returns the name for a component count
func DefinitionName(components int) string {
	if components < 0 {
		components = 0
	}
	if components >= len(definitionNames) {
		return definitionNames[len(definitionNames)-1]
	}
	return definitionNames[components]
}
