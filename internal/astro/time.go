package astro

import (
	"natal-api/internal/models"

	"github.com/soniakeys/meeus/v3/julian"
)

// UniversalHours converts a local clock hour to UT hours. The result may fall
// outside 0-24; the Julian Day absorbs the day rollover.
func UniversalHours(localHour, offsetHours float64) float64 {
	return localHour - offsetHours
}

// JulianDay returns the Julian Day for a Gregorian date at utHours UT.
func JulianDay(year, month, day int, utHours float64) float64 {
	return julian.CalendarGregorianToJD(year, month, float64(day)+utHours/24)
}

// ToInstant normalizes a validated birth moment with its UTC offset.
func ToInstant(m models.BirthMoment, offsetHours float64) models.AstronomicalInstant {
	ut := UniversalHours(float64(m.Hour), offsetHours)
	return models.AstronomicalInstant(JulianDay(m.Year, m.Month, m.Day, ut))
}
