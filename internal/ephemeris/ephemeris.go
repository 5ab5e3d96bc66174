// Package ephemeris computes ecliptic longitudes of the bodies and points used
// by natal charts, and Placidus house cusps.
package ephemeris

import (
	"errors"

	"natal-api/internal/models"
)

// Placidus is the only house system supported.
const Placidus byte = 'P'

var (
	ErrUnsupportedBody   = errors.New("ephemeris: unsupported body")
	ErrUnsupportedSystem = errors.New("ephemeris: unsupported house system")
	ErrHouseComputation  = errors.New("ephemeris: house cusps undefined at this latitude")
)

// Ephemeris is the numerical backend consumed by the chart service.
// Julian Days are in Universal Time.
type Ephemeris interface {
	Longitude(jd float64, body models.BodyKind) (float64, error)
	HouseCusps(jd, latitude, longitude float64, system byte) (models.HouseCusps, error)
}
