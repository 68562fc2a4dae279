package entities

import (
	"fmt"

	"bodygraph/domain/core/valueobjects"
)

// Channel connects two gates and, through them, two centers. The gate pair
// is unordered; Gates is stored with the lower gate first.
type Channel struct {
	Gates   [2]int                 `json:"gates"`
	Centers [2]valueobjects.Center `json:"centers"`
	Name    string                 `json:"name"`
	Theme   string                 `json:"theme"`
}

// NewChannel builds a channel, normalising gate order so that the centers
// stay aligned with their gates
func NewChannel(gateA, gateB int, centerA, centerB valueobjects.Center, name, theme string) Channel {
	if gateB < gateA {
		gateA, gateB = gateB, gateA
		centerA, centerB = centerB, centerA
	}
	return Channel{
		Gates:   [2]int{gateA, gateB},
		Centers: [2]valueobjects.Center{centerA, centerB},
		Name:    name,
		Theme:   theme,
	}
}

// Key returns the "a-b" gate pair identifier, e.g. "20-34"
func (c Channel) Key() string {
	return fmt.Sprintf("%d-%d", c.Gates[0], c.Gates[1])
}

// HasGate reports whether gate is one of the channel's two gates
func (c Channel) HasGate(gate int) bool {
	return c.Gates[0] == gate || c.Gates[1] == gate
}

// Connects reports whether the channel joins the two centers in either order
func (c Channel) Connects(a, b valueobjects.Center) bool {
	return (c.Centers[0] == a && c.Centers[1] == b) ||
		(c.Centers[0] == b && c.Centers[1] == a)
}

// IsActive reports whether both gates are present in the activated set
func (c Channel) IsActive(gates map[int]struct{}) bool {
	_, a := gates[c.Gates[0]]
	_, b := gates[c.Gates[1]]
	return a && b
}
