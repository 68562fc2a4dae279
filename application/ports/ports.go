package ports

import (
	"time"

	vo "bodygraph/domain/core/valueobjects"
)

// EphemerisProvider computes geocentric apparent ecliptic longitudes. This
// is a port in hexagonal architecture; the domain does not know which
// ephemeris backs it.
type EphemerisProvider interface {
	// Longitude returns the longitude of body at jd in degrees [0, 360).
	// Derived bodies (Earth, South Node) are not required.
	Longitude(jd vo.JulianDate, body vo.CelestialBody) (float64, error)
}

// NamedProvider is implemented by providers that can identify their backend
type NamedProvider interface {
	Name() string
}

// CalculationMetrics records calculation outcomes
type CalculationMetrics interface {
	ObserveCalculation(accuracy vo.Accuracy, duration time.Duration, err error)
	ObserveSampleFailure(hour int)
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

// ObserveCalculation implements CalculationMetrics
func (NoopMetrics) ObserveCalculation(vo.Accuracy, time.Duration, error) {}

// ObserveSampleFailure implements CalculationMetrics
func (NoopMetrics) ObserveSampleFailure(int) {}
