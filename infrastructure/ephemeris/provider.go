package ephemeris

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/pluto"

	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// Backend selects how planetary positions are computed
type Backend string

const (
	// BackendVSOP87 uses the full VSOP87B series read from disk. It is the
	// default and the only backend good to 0.01 degrees for every body.
	BackendVSOP87 Backend = "vsop87"
	// BackendAnalytic needs no data files. The outer planets drift by up
	// to a few tenths of a degree.
	BackendAnalytic Backend = "analytic"
)

// Config selects and configures a backend
type Config struct {
	Backend    Backend
	VSOP87Path string
}

// source supplies heliocentric J2000 positions and the apparent Sun
type source interface {
	name() string
	precise() bool
	earth(jde float64) (vec3, error)
	planet(body vo.CelestialBody, jde float64) (vec3, error)
	sunLongitude(jde float64) (float64, error)
}

// Provider computes geocentric apparent ecliptic longitudes of date. It
// implements ports.EphemerisProvider and is safe for concurrent use.
type Provider struct {
	src   source
	minJD vo.JulianDate
	maxJD vo.JulianDate
}

// NewProvider builds the provider for cfg
func NewProvider(cfg Config) (*Provider, error) {
	switch cfg.Backend {
	case BackendVSOP87, "":
		return NewVSOP87Provider(cfg.VSOP87Path)
	case BackendAnalytic:
		return NewAnalyticProvider(), nil
	default:
		return nil, fmt.Errorf("unknown ephemeris backend %q", cfg.Backend)
	}
}

func newProvider(src source) *Provider {
	// Pluto's series covers 1885-2099
	return &Provider{
		src:   src,
		minJD: vo.JulianDate(julian.CalendarGregorianToJD(1885, 1, 1)),
		maxJD: vo.JulianDate(julian.CalendarGregorianToJD(2099, 12, 31)),
	}
}

// Name identifies the backend
func (p *Provider) Name() string {
	return p.src.name()
}

// Precise reports whether every body is within 0.01 degrees
func (p *Provider) Precise() bool {
	return p.src.precise()
}

// Range returns the supported Julian dates
func (p *Provider) Range() (vo.JulianDate, vo.JulianDate) {
	return p.minJD, p.maxJD
}

// Longitude returns the apparent geocentric longitude of body at the UT
// Julian date jd. The Earth and South Node are left to the caller.
func (p *Provider) Longitude(jd vo.JulianDate, body vo.CelestialBody) (float64, error) {
	if !jd.IsFinite() || jd < p.minJD || jd > p.maxJD {
		return 0, pkgerrors.ErrJulianDateOutOfRange.Clone().
			WithDetail("julian_date", jd.String()).
			WithDetail("min", p.minJD.String()).
			WithDetail("max", p.maxJD.String())
	}
	jde := terrestrialTime(jd.Float())

	var (
		lon float64
		err error
	)
	switch body {
	case vo.Sun:
		lon, err = p.src.sunLongitude(jde)
	case vo.Moon:
		lambda, _, _ := moonposition.Position(jde)
		lon = normalize(lambda.Deg() + nutationInLongitude(jde))
	case vo.NorthNode:
		lon = normalize(moonposition.Node(jde).Deg())
	case vo.Mercury, vo.Venus, vo.Mars, vo.Jupiter, vo.Saturn, vo.Uranus, vo.Neptune, vo.Pluto:
		lon, err = p.planetLongitude(body, jde)
	default:
		return 0, pkgerrors.ErrEphemerisUnavailable.Clone().
			WithDetail("body", body.String()).
			WithDetail("reason", "body is derived, not observed")
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, pkgerrors.ErrEphemerisUnavailable.Clone().WithDetail("body", body.String())
	}
	return lon, nil
}

// planetLongitude corrects for light time, then reduces the geocentric
// J2000 direction to the apparent longitude of date
func (p *Provider) planetLongitude(body vo.CelestialBody, jde float64) (float64, error) {
	earth, err := p.src.earth(jde)
	if err != nil {
		return 0, err
	}
	planet, err := p.src.planet(body, jde)
	if err != nil {
		return 0, err
	}

	geo := planet.sub(earth)
	for i := 0; i < 2; i++ {
		tau := lightTimeDays * geo.norm()
		planet, err = p.src.planet(body, jde-tau)
		if err != nil {
			return 0, err
		}
		geo = planet.sub(earth)
	}
	return apparentLongitude(geo, jde), nil
}

// plutoPosition is shared by both backends
func plutoPosition(jde float64) vec3 {
	l, b, r := pluto.Heliocentric(jde)
	return fromSpherical(l, b, r)
}
