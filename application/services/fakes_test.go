package services

import (
	"errors"
	"math"
	"sync"
	"time"

	vo "bodygraph/domain/core/valueobjects"
)

// linearProvider moves every body at a constant rate from its J2000
// longitude. Bodies listed in failAt error at those instants.
type linearProvider struct {
	mu     sync.Mutex
	failAt []vo.JulianDate
	calls  int
}

var linearMotion = map[vo.CelestialBody][2]float64{
	vo.Sun:       {280.460, 0.9856474},
	vo.Moon:      {218.316, 13.176396},
	vo.NorthNode: {125.044, -0.0529538},
	vo.Mercury:   {252.251, 4.0923344},
	vo.Venus:     {181.980, 1.6021302},
	vo.Mars:      {355.433, 0.5240208},
	vo.Jupiter:   {34.351, 0.0830853},
	vo.Saturn:    {50.078, 0.0334442},
	vo.Uranus:    {314.055, 0.0117301},
	vo.Neptune:   {304.349, 0.0059809},
	vo.Pluto:     {238.929, 0.0039757},
}

var errProviderDown = errors.New("provider down")

func (p *linearProvider) Longitude(jd vo.JulianDate, body vo.CelestialBody) (float64, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	for _, f := range p.failAt {
		if math.Abs(jd.Sub(f)) < 1e-6 {
			return 0, errProviderDown
		}
	}
	motion, ok := linearMotion[body]
	if !ok {
		return 0, errors.New("derived body requested")
	}
	return motion[0] + motion[1]*jd.Sub(vo.J2000), nil
}

func (p *linearProvider) Name() string {
	return "linear"
}

// failingProvider always errors
type failingProvider struct{}

func (failingProvider) Longitude(vo.JulianDate, vo.CelestialBody) (float64, error) {
	return 0, errProviderDown
}

// recordingMetrics counts observations
type recordingMetrics struct {
	mu             sync.Mutex
	calculations   map[vo.Accuracy]int
	errors         int
	sampleFailures []int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{calculations: make(map[vo.Accuracy]int)}
}

func (m *recordingMetrics) ObserveCalculation(accuracy vo.Accuracy, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calculations[accuracy]++
	if err != nil {
		m.errors++
	}
}

func (m *recordingMetrics) ObserveSampleFailure(hour int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sampleFailures = append(m.sampleFailures, hour)
}
