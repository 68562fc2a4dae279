package catalog

import (
	vo "bodygraph/domain/core/valueobjects"
)

// centerGates partitions the 64 gates across the nine centers
var centerGates = map[vo.Center][]int{
	vo.CenterHead:        {64, 61, 63},
	vo.CenterAjna:        {47, 24, 4, 17, 43, 11},
	vo.CenterThroat:      {62, 23, 56, 35, 12, 45, 33, 8, 31, 20, 16},
	vo.CenterG:           {1, 13, 25, 46, 2, 15, 10, 7},
	vo.CenterHeart:       {21, 40, 26, 51},
	vo.CenterSacral:      {5, 14, 29, 59, 9, 3, 42, 27, 34},
	vo.CenterSolarPlexus: {6, 37, 22, 36, 30, 55, 49},
	vo.CenterSpleen:      {48, 57, 44, 50, 32, 28, 18},
	vo.CenterRoot:        {53, 60, 52, 19, 39, 41, 58, 38, 54},
}

var gateCenter = func() map[int]vo.Center {
	m := make(map[int]vo.Center, GateCount)
	for center, gates := range centerGates {
		for _, g := range gates {
			m[g] = center
		}
	}
	return m
}()

// CenterOf returns the center a gate belongs to
func CenterOf(gate int) (vo.Center, bool) {
	c, ok := gateCenter[gate]
	return c, ok
}

// GatesOf returns the gates of a center in table order
func GatesOf(center vo.Center) []int {
	gates := centerGates[center]
	out := make([]int, len(gates))
	copy(out, gates)
	return out
}
