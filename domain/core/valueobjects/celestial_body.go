package valueobjects

import (
	"fmt"
)

// CelestialBody identifies one of the tracked bodies. The set is closed.
type CelestialBody int

const (
	Sun CelestialBody = iota
	Earth
	Moon
	NorthNode
	SouthNode
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// BodyCount is the number of tracked bodies per epoch
const BodyCount = 13

var bodyNames = [BodyCount]string{
	Sun:       "sun",
	Earth:     "earth",
	Moon:      "moon",
	NorthNode: "north_node",
	SouthNode: "south_node",
	Mercury:   "mercury",
	Venus:     "venus",
	Mars:      "mars",
	Jupiter:   "jupiter",
	Saturn:    "saturn",
	Uranus:    "uranus",
	Neptune:   "neptune",
	Pluto:     "pluto",
}

// AllBodies returns the tracked bodies in chart display order
func AllBodies() []CelestialBody {
	bodies := make([]CelestialBody, BodyCount)
	for i := range bodies {
		bodies[i] = CelestialBody(i)
	}
	return bodies
}

// Valid reports whether b is one of the tracked bodies
func (b CelestialBody) Valid() bool {
	return b >= Sun && b <= Pluto
}

// String returns the snake_case body identifier
func (b CelestialBody) String() string {
	if !b.Valid() {
		return fmt.Sprintf("body(%d)", int(b))
	}
	return bodyNames[b]
}

// Derived reports whether the body's longitude is computed from another
// body rather than queried from the ephemeris
func (b CelestialBody) Derived() bool {
	return b == Earth || b == SouthNode
}

// Source returns the body a derived body mirrors. Non-derived bodies
// return themselves.
func (b CelestialBody) Source() CelestialBody {
	switch b {
	case Earth:
		return Sun
	case SouthNode:
		return NorthNode
	default:
		return b
	}
}

// MarshalText implements encoding.TextMarshaler
func (b CelestialBody) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid celestial body %d", int(b))
	}
	return []byte(bodyNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *CelestialBody) UnmarshalText(text []byte) error {
	for i, name := range bodyNames {
		if name == string(text) {
			*b = CelestialBody(i)
			return nil
		}
	}
	return fmt.Errorf("unknown celestial body %q", string(text))
}
