package services

import "math"

func nanValue() float64 {
	return math.NaN()
}

// arcDistance is the unsigned angle between two longitudes
func arcDistance(a, b float64) float64 {
	return math.Abs(angleDiff(a, b))
}
