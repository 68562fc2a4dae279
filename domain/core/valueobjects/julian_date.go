package valueobjects

import (
	"math"
	"strconv"
)

// JulianDate is a continuous day count in Universal Time
type JulianDate float64

// J2000 is the Julian date of 2000-01-01 12:00 UT
const J2000 JulianDate = 2451545.0

// Float returns the raw day count
func (jd JulianDate) Float() float64 {
	return float64(jd)
}

// AddDays shifts the date by a (possibly fractional) number of days
func (jd JulianDate) AddDays(days float64) JulianDate {
	return jd + JulianDate(days)
}

// Sub returns jd - other in days
func (jd JulianDate) Sub(other JulianDate) float64 {
	return float64(jd - other)
}

// IsFinite reports whether the date is a usable number
func (jd JulianDate) IsFinite() bool {
	f := float64(jd)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String formats the date with six decimals (about 0.1 s)
func (jd JulianDate) String() string {
	return strconv.FormatFloat(float64(jd), 'f', 6, 64)
}
