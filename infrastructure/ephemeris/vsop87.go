package ephemeris

import (
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"

	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// vsop87Source reads the VSOP87B series for the Earth and the planets.
// Pluto is not part of VSOP87 and uses the same series as the analytic
// backend.
type vsop87Source struct {
	earthSeries *pp.V87Planet
	planets     map[vo.CelestialBody]*pp.V87Planet
}

var vsop87Bodies = map[vo.CelestialBody]int{
	vo.Mercury: pp.Mercury,
	vo.Venus:   pp.Venus,
	vo.Mars:    pp.Mars,
	vo.Jupiter: pp.Jupiter,
	vo.Saturn:  pp.Saturn,
	vo.Uranus:  pp.Uranus,
	vo.Neptune: pp.Neptune,
}

// NewVSOP87Provider loads the VSOP87B files from dir. An empty dir falls
// back to the VSOP87 environment variable.
//
// Planet positions are the full series reduced with light time, precession,
// aberration and nutation, within an arcsecond or two over 1885-2099.
func NewVSOP87Provider(dir string) (*Provider, error) {
	load := func(ibody int) (*pp.V87Planet, error) {
		if dir == "" {
			return pp.LoadPlanet(ibody)
		}
		return pp.LoadPlanetPath(ibody, dir)
	}

	src := &vsop87Source{planets: make(map[vo.CelestialBody]*pp.V87Planet, len(vsop87Bodies))}
	earth, err := load(pp.Earth)
	if err != nil {
		return nil, pkgerrors.ErrEphemerisUnavailable.Clone().
			WithDetail("backend", string(BackendVSOP87)).
			WithDetail("path", dir).
			WithCause(err)
	}
	src.earthSeries = earth

	for body, ibody := range vsop87Bodies {
		series, err := load(ibody)
		if err != nil {
			return nil, pkgerrors.ErrEphemerisUnavailable.Clone().
				WithDetail("backend", string(BackendVSOP87)).
				WithDetail("body", body.String()).
				WithCause(err)
		}
		src.planets[body] = series
	}
	return newProvider(src), nil
}

func (s *vsop87Source) name() string {
	return string(BackendVSOP87)
}

func (s *vsop87Source) precise() bool {
	return true
}

func (s *vsop87Source) earth(jde float64) (vec3, error) {
	return fromSpherical(s.earthSeries.Position2000(jde)), nil
}

func (s *vsop87Source) planet(body vo.CelestialBody, jde float64) (vec3, error) {
	if body == vo.Pluto {
		return plutoPosition(jde), nil
	}
	series, ok := s.planets[body]
	if !ok {
		return vec3{}, pkgerrors.ErrEphemerisUnavailable.Clone().WithDetail("body", body.String())
	}
	return fromSpherical(series.Position2000(jde)), nil
}

// sunLongitude is the apparent solar longitude from the Earth series
func (s *vsop87Source) sunLongitude(jde float64) (float64, error) {
	lon, _, _ := solar.ApparentVSOP87(s.earthSeries, jde)
	return normalize(lon.Deg()), nil
}
