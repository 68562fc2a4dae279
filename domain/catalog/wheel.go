// Package catalog holds the static tables the chart engine decodes against:
// the gate wheel, the gate to center partition, the channel table and the
// name tables for types, authorities, definitions, profiles and crosses.
// Everything here is read-only after package initialisation. Validate
// checks the tables are exhaustive and consistent.
package catalog

const (
	// GateCount is the number of gates on the wheel
	GateCount = 64

	// GateSpan is the arc covered by a single gate in degrees
	GateSpan = 360.0 / GateCount

	// IgingOffset rotates tropical longitude so that 0 falls on the start
	// of gate 41 (302 degrees, 2 Aquarius)
	IgingOffset = 58.0

	// WheelOrigin is the tropical longitude where gate 41 begins
	WheelOrigin = 360.0 - IgingOffset
)

// Digit radices below the gate, in decoding order
const (
	LinesPerGate  = 6
	ColorsPerLine = 6
	TonesPerColor = 6
	BasesPerTone  = 5
)

// wheelOrder lists the gate occupying each 5.625 degree slot, starting at
// the wheel origin and moving with increasing longitude
var wheelOrder = [GateCount]int{
	41, 19, 13, 49, 30, 55, 37, 63, 22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35, 45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64, 47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5, 26, 11, 10, 58, 38, 54, 61, 60,
}

// slotOfGate is the inverse of wheelOrder, filled at init
var slotOfGate [GateCount + 1]int

func init() {
	for i := range slotOfGate {
		slotOfGate[i] = -1
	}
	for slot, gate := range wheelOrder {
		if gate >= 1 && gate <= GateCount {
			slotOfGate[gate] = slot
		}
	}
}

// GateAtSlot returns the gate in wheel slot i (0..63)
func GateAtSlot(i int) (int, bool) {
	if i < 0 || i >= GateCount {
		return 0, false
	}
	return wheelOrder[i], true
}

// SlotOfGate returns the wheel slot of gate (1..64)
func SlotOfGate(gate int) (int, bool) {
	if gate < 1 || gate > GateCount {
		return 0, false
	}
	slot := slotOfGate[gate]
	return slot, slot >= 0
}

// WheelOrder returns a copy of the slot to gate table
func WheelOrder() []int {
	out := make([]int, GateCount)
	copy(out, wheelOrder[:])
	return out
}

// GateArc returns the tropical longitude interval [start, end) of gate.
// end may exceed 360 for the gate that straddles 0 Aries.
func GateArc(gate int) (start, end float64, ok bool) {
	slot, ok := SlotOfGate(gate)
	if !ok {
		return 0, 0, false
	}
	start = WheelOrigin + float64(slot)*GateSpan
	if start >= 360 {
		start -= 360
	}
	return start, start + GateSpan, true
}

// OppositeGate returns the gate 180 degrees across the wheel
func OppositeGate(gate int) (int, bool) {
	slot, ok := SlotOfGate(gate)
	if !ok {
		return 0, false
	}
	return wheelOrder[(slot+GateCount/2)%GateCount], true
}
