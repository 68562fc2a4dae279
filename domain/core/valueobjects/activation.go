package valueobjects

// Epoch labels which instant an activation was computed for
type Epoch string

const (
	// EpochPersonality is the birth instant
	EpochPersonality Epoch = "personality"
	// EpochDesign is the instant 88 degrees of solar arc before birth
	EpochDesign Epoch = "design"
)

// Activation is a decoded wheel position: gate, then the nested line,
// color, tone and base digits
type Activation struct {
	Gate  int `json:"gate"`
	Line  int `json:"line"`
	Color int `json:"color"`
	Tone  int `json:"tone"`
	Base  int `json:"base"`
}

// Valid reports whether every digit is in range
func (a Activation) Valid() bool {
	return a.Gate >= 1 && a.Gate <= 64 &&
		a.Line >= 1 && a.Line <= 6 &&
		a.Color >= 1 && a.Color <= 6 &&
		a.Tone >= 1 && a.Tone <= 6 &&
		a.Base >= 1 && a.Base <= 5
}

// GateActivation is an activation tagged with the body and epoch it came from
type GateActivation struct {
	Body      CelestialBody `json:"planet"`
	Epoch     Epoch         `json:"epoch"`
	Longitude float64       `json:"longitude"`
	Activation
}
