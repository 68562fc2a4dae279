package services

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"bodygraph/application/ports"
	"bodygraph/domain/catalog"
	"bodygraph/domain/config"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// EphemerisCalculator turns instants into wheel activations. It adds the
// derived bodies, the design epoch search and the wheel decoding on top of
// an EphemerisProvider.
type EphemerisCalculator struct {
	provider ports.EphemerisProvider
	config   *config.DomainConfig
}

// NewEphemerisCalculator creates an ephemeris calculator
func NewEphemerisCalculator(provider ports.EphemerisProvider, cfg *config.DomainConfig) *EphemerisCalculator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &EphemerisCalculator{provider: provider, config: cfg}
}

// DatetimeToJulian converts a wall-clock time with its UTC offset in hours
// to the Julian date of the UTC instant. Only the calendar and clock fields
// of local are used; its location is ignored.
func DatetimeToJulian(local time.Time, tzOffsetHours float64) vo.JulianDate {
	hours := float64(local.Hour()) +
		float64(local.Minute())/60 +
		(float64(local.Second())+float64(local.Nanosecond())/1e9)/3600 -
		tzOffsetHours
	day := float64(local.Day()) + hours/24
	return vo.JulianDate(julian.CalendarGregorianToJD(local.Year(), int(local.Month()), day))
}

// TimezoneOffset returns the UTC offset in hours that loc applies at the
// given wall-clock time, daylight saving included. Only the calendar and
// clock fields of local are used. A wall clock skipped by a forward
// transition takes the offset in force before the transition, and a
// repeated one takes whichever offset the zone rules resolve first.
func TimezoneOffset(loc *time.Location, local time.Time) float64 {
	wall := wallClock(local, time.UTC)
	t := wallClock(local, loc)
	_, offset := t.Zone()
	if wallClock(t, time.UTC).After(wall) {
		// t landed past the gap
		start, _ := t.ZoneBounds()
		_, offset = start.Add(-time.Nanosecond).Zone()
	}
	return float64(offset) / 3600
}

func wallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// BirthJulianDate resolves the zone offset of the input's wall clock and
// converts it to a Julian date
func BirthJulianDate(input vo.BirthInput) vo.JulianDate {
	wall := input.WallClock()
	return DatetimeToJulian(wall, TimezoneOffset(input.Location(), wall))
}

// NormalizeDegrees maps an angle to [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// angleDiff returns a-b wrapped to (-180, 180]
func angleDiff(a, b float64) float64 {
	d := NormalizeDegrees(a - b)
	if d > 180 {
		d -= 360
	}
	return d
}

// PlanetLongitude returns the longitude of body at jd in [0, 360). Earth
// and the South Node are the points opposite the Sun and North Node.
func (c *EphemerisCalculator) PlanetLongitude(jd vo.JulianDate, body vo.CelestialBody) (float64, error) {
	if !body.Valid() {
		return 0, pkgerrors.LookupMiss("celestial_body", int(body))
	}
	if !jd.IsFinite() {
		return 0, pkgerrors.ErrJulianDateOutOfRange.Clone().WithDetail("julian_date", jd.String())
	}
	if body.Derived() {
		lon, err := c.PlanetLongitude(jd, body.Source())
		if err != nil {
			return 0, err
		}
		return NormalizeDegrees(lon + 180), nil
	}

	lon, err := c.provider.Longitude(jd, body)
	if err != nil {
		if pkgerrors.IsEphemeris(err) {
			return 0, err
		}
		return 0, pkgerrors.ErrEphemerisUnavailable.Clone().
			WithDetail("body", body.String()).
			WithDetail("julian_date", jd.String()).
			WithCause(err)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, pkgerrors.ErrEphemerisUnavailable.Clone().
			WithDetail("body", body.String()).
			WithDetail("julian_date", jd.String())
	}
	return NormalizeDegrees(lon), nil
}

// CalculateDesignDate finds the instant before birth at which the Sun stood
// DesignArcDegrees behind its birth longitude. The arc is solar, so the
// elapsed time varies with the Earth's orbital speed.
func (c *EphemerisCalculator) CalculateDesignDate(birthJD vo.JulianDate) (vo.JulianDate, error) {
	birthSun, err := c.PlanetLongitude(birthJD, vo.Sun)
	if err != nil {
		return 0, err
	}
	target := NormalizeDegrees(birthSun - c.config.DesignArcDegrees)

	// offset is the Sun's signed distance past target. It rises through
	// zero once inside the search window.
	offset := func(jd vo.JulianDate) (float64, error) {
		lon, err := c.PlanetLongitude(jd, vo.Sun)
		if err != nil {
			return 0, err
		}
		return angleDiff(lon, target), nil
	}

	lo := birthJD.AddDays(-c.config.DesignSearchOffsetDays)
	hi := lo.AddDays(c.config.DesignSearchSpanDays)
	fLo, err := offset(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := offset(hi)
	if err != nil {
		return 0, err
	}
	if fLo > 0 || fHi < 0 {
		return 0, pkgerrors.ErrDesignDateNotFound.Clone().
			WithDetail("birth_julian_date", birthJD.String()).
			WithDetail("reason", "target longitude not bracketed")
	}

	tolerance := c.config.LongitudeTolerance
	mid := lo
	fMid := fLo
	for i := 0; i < c.config.MaxSearchIterations; i++ {
		mid = lo + (hi-lo)/2
		fMid, err = offset(mid)
		if err != nil {
			return 0, err
		}
		if math.Abs(fMid) <= tolerance {
			break
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	// Newton polish using the local solar speed
	const h = 1e-3
	fPlus, err := offset(mid.AddDays(h))
	if err != nil {
		return 0, err
	}
	fMinus, err := offset(mid.AddDays(-h))
	if err != nil {
		return 0, err
	}
	if speed := (fPlus - fMinus) / (2 * h); speed > 0 {
		candidate := mid.AddDays(-fMid / speed)
		if fCand, err := offset(candidate); err == nil && math.Abs(fCand) < math.Abs(fMid) {
			mid, fMid = candidate, fCand
		}
	}

	if math.Abs(fMid) > 100*tolerance {
		return 0, pkgerrors.ErrDesignDateNotFound.Clone().
			WithDetail("birth_julian_date", birthJD.String()).
			WithDetail("residual_degrees", fMid)
	}
	return mid, nil
}

// LongitudeToActivation decodes a longitude into gate, line, color, tone
// and base. The longitude is rotated onto the wheel, taken as a fraction of
// the circle and read off digit by digit in radices 64, 6, 6, 6 and 5.
func LongitudeToActivation(longitude float64) (vo.Activation, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return vo.Activation{}, pkgerrors.ErrEphemerisUnavailable.Clone().
			WithDetail("longitude", longitude)
	}

	p := NormalizeDegrees(longitude+catalog.IgingOffset) / 360

	slot, p := digit(p, catalog.GateCount)
	line, p := digit(p, catalog.LinesPerGate)
	color, p := digit(p, catalog.ColorsPerLine)
	tone, p := digit(p, catalog.TonesPerColor)
	base, _ := digit(p, catalog.BasesPerTone)

	gate, ok := catalog.GateAtSlot(slot)
	if !ok {
		return vo.Activation{}, pkgerrors.LookupMiss("wheel_slot", slot)
	}
	return vo.Activation{
		Gate:  gate,
		Line:  line + 1,
		Color: color + 1,
		Tone:  tone + 1,
		Base:  base + 1,
	}, nil
}

// digit extracts the next mixed-radix digit of p in [0, 1) and the
// remaining fraction
func digit(p float64, radix int) (int, float64) {
	scaled := p * float64(radix)
	d := int(math.Floor(scaled))
	if d >= radix {
		d = radix - 1
	}
	if d < 0 {
		d = 0
	}
	rest := scaled - float64(d)
	if rest < 0 {
		rest = 0
	}
	if rest >= 1 {
		rest = math.Nextafter(1, 0)
	}
	return d, rest
}

// AllPlanetaryPositions returns the activations of every tracked body at jd
// in body order, tagged with epoch
func (c *EphemerisCalculator) AllPlanetaryPositions(jd vo.JulianDate, epoch vo.Epoch) ([]vo.GateActivation, error) {
	activations := make([]vo.GateActivation, 0, vo.BodyCount)
	for _, body := range vo.AllBodies() {
		lon, err := c.PlanetLongitude(jd, body)
		if err != nil {
			return nil, err
		}
		activation, err := LongitudeToActivation(lon)
		if err != nil {
			return nil, err
		}
		activations = append(activations, vo.GateActivation{
			Body:       body,
			Epoch:      epoch,
			Longitude:  lon,
			Activation: activation,
		})
	}
	return activations, nil
}

// ProviderName returns the backend name when the provider reports one
func (c *EphemerisCalculator) ProviderName() string {
	if named, ok := c.provider.(ports.NamedProvider); ok {
		return named.Name()
	}
	return "unknown"
}
