package ephemeris

import (
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/solar"

	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// analyticSource takes the Sun from the low-precision solar theory and the
// planets from mean Keplerian elements without perturbations
type analyticSource struct{}

// NewAnalyticProvider creates a provider that needs no data files. The Sun,
// Moon, nodes and Pluto stay within 0.01 degrees. Planets from the elements
// can be off by arcminutes, Jupiter and Saturn by up to 0.2 degrees since the
// great inequality is missing, so their lines and colors are not reliable.
func NewAnalyticProvider() *Provider {
	return newProvider(analyticSource{})
}

func (analyticSource) name() string {
	return string(BackendAnalytic)
}

func (analyticSource) precise() bool {
	return false
}

func (analyticSource) earth(jde float64) (vec3, error) {
	return earthMoonElements.position(jde), nil
}

func (analyticSource) planet(body vo.CelestialBody, jde float64) (vec3, error) {
	switch body {
	case vo.Mercury:
		return mercuryElements.position(jde), nil
	case vo.Venus:
		return venusElements.position(jde), nil
	case vo.Mars:
		return marsElements.position(jde), nil
	case vo.Jupiter:
		return jupiterElements.position(jde), nil
	case vo.Saturn:
		return saturnElements.position(jde), nil
	case vo.Uranus:
		return uranusElements.position(jde), nil
	case vo.Neptune:
		return neptuneElements.position(jde), nil
	case vo.Pluto:
		return plutoPosition(jde), nil
	default:
		return vec3{}, pkgerrors.ErrEphemerisUnavailable.Clone().WithDetail("body", body.String())
	}
}

func (analyticSource) sunLongitude(jde float64) (float64, error) {
	return normalize(solar.ApparentLongitude(base.J2000Century(jde)).Deg()), nil
}
