package ephemeris

import (
	"math"

	"github.com/soniakeys/meeus/v3/apparent"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/unit"
)

// lightTimeDays is the light travel time across one astronomical unit
const lightTimeDays = 0.0057755183

// vec3 is a heliocentric ecliptic position in AU, J2000 frame
type vec3 struct {
	x, y, z float64
}

func (v vec3) sub(o vec3) vec3 {
	return vec3{v.x - o.x, v.y - o.y, v.z - o.z}
}

func (v vec3) norm() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// longitude returns the direction of v in the ecliptic plane in degrees
func (v vec3) longitude() float64 {
	return normalize(math.Atan2(v.y, v.x) * 180 / math.Pi)
}

// latitude returns the elevation of v above the ecliptic in degrees
func (v vec3) latitude() float64 {
	return math.Atan2(v.z, math.Hypot(v.x, v.y)) * 180 / math.Pi
}

// fromSpherical builds a vector from longitude, latitude and radius
func fromSpherical(l, b unit.Angle, r float64) vec3 {
	sl, cl := math.Sincos(l.Rad())
	sb, cb := math.Sincos(b.Rad())
	return vec3{r * cb * cl, r * cb * sl, r * sb}
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// nutationInLongitude returns Δψ at jde in degrees
func nutationInLongitude(jde float64) float64 {
	dpsi, _ := nutation.Nutation(jde)
	return dpsi.Deg()
}

// apparentLongitude takes a geometric geocentric J2000 direction to the
// apparent longitude of date: precession, annual aberration, the FK5
// correction and nutation in longitude.
func apparentLongitude(geo vec3, jde float64) float64 {
	ecl := &coord.Ecliptic{
		Lon: unit.AngleFromDeg(geo.longitude()),
		Lat: unit.AngleFromDeg(geo.latitude()),
	}
	precess.EclipticPosition(ecl, ecl, 2000, base.JDEToJulianYear(jde), 0, 0)

	dLon, dLat := apparent.EclipticAberration(ecl.Lon, ecl.Lat, jde)
	lon, _ := pp.ToFK5(ecl.Lon+dLon, ecl.Lat+dLat, jde)
	return normalize(lon.Deg() + nutationInLongitude(jde))
}

// deltaT returns TT-UT at the UT Julian date jd. The tabulated values run
// to the end of 2009, the polynomial takes over after that.
func deltaT(jd float64) unit.Time {
	y, _, _ := julian.JDToCalendar(jd)
	if y < 2010 {
		return deltat.Interp10A(jd)
	}
	return deltat.PolyAfter2000(base.JDEToJulianYear(jd))
}

// terrestrialTime converts a UT Julian date to a Julian ephemeris date
func terrestrialTime(jd float64) float64 {
	return jd + deltaT(jd).Day()
}
