package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	pkgerrors "bodygraph/pkg/errors"
	"bodygraph/pkg/utils"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// birthInputFields is the raw request shape checked with struct tags
type birthInputFields struct {
	Name      string  `validate:"max=200"`
	BirthDate string  `validate:"required,datetime=2006-01-02"`
	BirthTime string  `validate:"omitempty,datetime=15:04"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
	Timezone  string  `validate:"required"`
}

// BirthInput is the immutable request value a chart is computed from
type BirthInput struct {
	name      string
	year      int
	month     time.Month
	day       int
	hasTime   bool
	hour      int
	minute    int
	latitude  float64
	longitude float64
	timezone  string
	location  *time.Location
}

// NewBirthInput validates and builds a BirthInput. birthTime is "HH:MM";
// nil or empty means the time is unknown.
func NewBirthInput(
	name string,
	birthDate string,
	birthTime *string,
	latitude float64,
	longitude float64,
	timezone string,
) (BirthInput, error) {
	fields := birthInputFields{
		Name:      strings.TrimSpace(name),
		BirthDate: strings.TrimSpace(birthDate),
		Latitude:  latitude,
		Longitude: longitude,
		Timezone:  strings.TrimSpace(timezone),
	}
	if birthTime != nil {
		fields.BirthTime = strings.TrimSpace(*birthTime)
	}

	if err := utils.ValidateStruct(fields); err != nil {
		return BirthInput{}, err
	}

	loc, err := time.LoadLocation(fields.Timezone)
	if err != nil || fields.Timezone == "Local" {
		return BirthInput{}, pkgerrors.ErrUnknownTimezone.Clone().
			WithDetail("timezone", fields.Timezone).
			WithCause(err)
	}

	date, err := time.Parse(dateLayout, fields.BirthDate)
	if err != nil {
		return BirthInput{}, pkgerrors.ErrInvalidBirthInput.Clone().
			WithDetail("field", "birth_date").
			WithCause(err)
	}

	in := BirthInput{
		name:      fields.Name,
		year:      date.Year(),
		month:     date.Month(),
		day:       date.Day(),
		latitude:  latitude,
		longitude: longitude,
		timezone:  fields.Timezone,
		location:  loc,
	}

	if fields.BirthTime != "" {
		clock, err := time.Parse(timeLayout, fields.BirthTime)
		if err != nil {
			return BirthInput{}, pkgerrors.ErrInvalidBirthInput.Clone().
				WithDetail("field", "birth_time").
				WithCause(err)
		}
		in.hasTime = true
		in.hour = clock.Hour()
		in.minute = clock.Minute()
	}

	return in, nil
}

// Name returns the opaque name
func (b BirthInput) Name() string {
	return b.name
}

// BirthDate returns the date formatted as YYYY-MM-DD
func (b BirthInput) BirthDate() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.year, int(b.month), b.day)
}

// BirthTime returns the clock time as HH:MM and whether it is known
func (b BirthInput) BirthTime() (string, bool) {
	if !b.hasTime {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", b.hour, b.minute), true
}

// HasBirthTime reports whether the birth time is known
func (b BirthInput) HasBirthTime() bool {
	return b.hasTime
}

// Latitude returns the birth latitude in degrees
func (b BirthInput) Latitude() float64 {
	return b.latitude
}

// Longitude returns the birth longitude in degrees
func (b BirthInput) Longitude() float64 {
	return b.longitude
}

// Timezone returns the IANA zone name
func (b BirthInput) Timezone() string {
	return b.timezone
}

// Location returns the resolved zone
func (b BirthInput) Location() *time.Location {
	return b.location
}

// WallClock returns the birth date and clock as given, in UTC so no zone
// rule can shift it. Unknown times resolve to midnight; use AtHour for
// sampling.
func (b BirthInput) WallClock() time.Time {
	return time.Date(b.year, b.month, b.day, b.hour, b.minute, 0, 0, time.UTC)
}

// WallClockExists reports whether the zone ever shows the wall clock. It is
// false inside a forward daylight saving gap.
func (b BirthInput) WallClockExists() bool {
	t := time.Date(b.year, b.month, b.day, b.hour, b.minute, 0, 0, b.location)
	return t.Year() == b.year && t.Month() == b.month && t.Day() == b.day &&
		t.Hour() == b.hour && t.Minute() == b.minute
}

// AtHour returns a copy with the birth time set to hour:00
func (b BirthInput) AtHour(hour int) BirthInput {
	b.hasTime = true
	b.hour = hour
	b.minute = 0
	return b
}

// Key returns a canonical string identifying the input
func (b BirthInput) Key() string {
	clock, ok := b.BirthTime()
	if !ok {
		clock = "unknown"
	}
	return strings.Join([]string{
		b.name,
		b.BirthDate(),
		clock,
		strconv.FormatFloat(b.latitude, 'f', -1, 64),
		strconv.FormatFloat(b.longitude, 'f', -1, 64),
		b.timezone,
	}, "|")
}

// Equals checks if two inputs describe the same request
func (b BirthInput) Equals(other BirthInput) bool {
	return b.Key() == other.Key()
}
