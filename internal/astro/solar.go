package astro

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrPolarLatitude is returned when the sun never reaches the requested
// depression angle on the given date, which happens near the poles around
// the solstices. The deployment latitude band (~±10°) never triggers it.
var ErrPolarLatitude = errors.New("sun does not reach the requested angle at this latitude")

// SolarTimes holds the computed prayer-event instants for one day,
// expressed as decimal local-time hours (e.g. 12.047 = 12:02).
type SolarTimes struct {
	Fajr    float64
	Sunrise float64
	Dhuhr   float64
	Asr     float64
	Maghrib float64
	Isha    float64
}

const refractionAngle = 0.833 // standard atmospheric refraction at the horizon

// Compute calculates the solar prayer events for the given civil date.
// Latitude and longitude are in degrees, fajrAngle and ishaAngle are
// twilight depression angles in degrees, and utcOffsetHours shifts the
// result into local civil time. Asr follows the Shafi'i convention
// (shadow factor 1).
func Compute(date time.Time, latitude, longitude, fajrAngle, ishaAngle, utcOffsetHours float64) (SolarTimes, error) {
	d := daysSinceEpoch(date)

	g := normalizeDegrees(357.529 + 0.98560028*d)
	q := normalizeDegrees(280.459 + 0.98564736*d)
	l := normalizeDegrees(q + 1.915*sinDeg(g) + 0.020*sinDeg(2*g))

	e := 23.439 - 0.00000036*d
	ra := math.Atan2(cosDeg(e)*sinDeg(l), cosDeg(l)) * (180 / math.Pi) / 15
	dec := math.Asin(sinDeg(e)*sinDeg(l)) * (180 / math.Pi)

	// Equation of time, normalized into [-12, 12) so the right-ascension
	// wraparound near the equinoxes cannot shift noon by a day.
	eqt := math.Mod(q/15-ra+12, 24) - 12

	dhuhr := 12 - longitude/15 - eqt + utcOffsetHours

	fajrHA, err := hourAngle(-fajrAngle, latitude, dec)
	if err != nil {
		return SolarTimes{}, fmt.Errorf("fajr: %w", err)
	}

	sunHA, err := hourAngle(-refractionAngle, latitude, dec)
	if err != nil {
		return SolarTimes{}, fmt.Errorf("sunrise: %w", err)
	}

	// Shafi'i shadow factor 1: the sun altitude at which an object's
	// shadow equals its length plus the noon shadow.
	asrAltitude := math.Atan(1/(1+math.Tan(math.Abs(latitude-dec)*math.Pi/180))) * (180 / math.Pi)
	asrHA, err := hourAngle(asrAltitude, latitude, dec)
	if err != nil {
		return SolarTimes{}, fmt.Errorf("asr: %w", err)
	}

	ishaHA, err := hourAngle(-ishaAngle, latitude, dec)
	if err != nil {
		return SolarTimes{}, fmt.Errorf("isha: %w", err)
	}

	return SolarTimes{
		Fajr:    dhuhr - fajrHA,
		Sunrise: dhuhr - sunHA,
		Dhuhr:   dhuhr,
		Asr:     dhuhr + asrHA,
		Maghrib: dhuhr + sunHA,
		Isha:    dhuhr + ishaHA,
	}, nil
}

// daysSinceEpoch returns the day count relative to the J2000.0 epoch used
// by the low-precision solar ephemeris above.
func daysSinceEpoch(date time.Time) float64 {
	y := date.Year()
	m := int(date.Month())
	day := date.Day()

	return float64(367*y-(7*(y+(m+9)/12))/4+(275*m)/9+day) - 730531.5
}

// hourAngle returns the half-arc, in hours, between solar noon and the
// moment the sun's altitude equals the given degrees (negative altitudes
// are depressions below the horizon).
func hourAngle(altitude, latitude, declination float64) (float64, error) {
	cosH := (sinDeg(altitude) - sinDeg(latitude)*sinDeg(declination)) /
		(cosDeg(latitude) * cosDeg(declination))

	if cosH < -1 || cosH > 1 {
		return 0, fmt.Errorf("%w: altitude %.3f°, latitude %.3f°", ErrPolarLatitude, altitude, latitude)
	}

	return math.Acos(cosH) * (180 / math.Pi) / 15, nil
}

// FormatHours renders decimal hours as a "HH:mm" wall-clock string,
// truncating fractional minutes and normalizing into a single day.
func FormatHours(hours float64) string {
	hours = math.Mod(math.Mod(hours, 24)+24, 24)
	h := int(hours)
	m := int((hours - float64(h)) * 60)

	return fmt.Sprintf("%02d:%02d", h, m)
}

func normalizeDegrees(angle float64) float64 {
	return math.Mod(math.Mod(angle, 360)+360, 360)
}

func sinDeg(degrees float64) float64 {
	return math.Sin(degrees * math.Pi / 180)
}

func cosDeg(degrees float64) float64 {
	return math.Cos(degrees * math.Pi / 180)
}
