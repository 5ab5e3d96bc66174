package ephemeris

import (
	"fmt"
	"math"

	"natal-api/internal/astro"
	"natal-api/internal/models"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

const (
	placidusMaxIter = 50
	placidusEpsilon = 1e-9
)

// Meeus implements Ephemeris with the analytical theories from Meeus,
// Astronomical Algorithms. It needs no data files.
type Meeus struct{}

// NewMeeus returns the analytical ephemeris.
func NewMeeus() *Meeus {
	return &Meeus{}
}

// jde converts a UT Julian Day to Julian Ephemeris Day.
func jde(jd float64) float64 {
	return jd + float64(deltat.Interp10A(jd))/86400
}

// Longitude returns the apparent geocentric ecliptic longitude of body in degrees, [0, 360).
func (Meeus) Longitude(jd float64, body models.BodyKind) (float64, error) {
	e := jde(jd)
	dpsi, _ := nutation.Nutation(e)

	var lon float64
	switch body {
	case models.Sun:
		lon = solar.ApparentLongitude(base.J2000Century(e)).Deg()
	case models.Moon:
		l, _, _ := moonposition.Position(e)
		lon = l.Deg() + dpsi.Deg()
	case models.LunarNodeMean:
		lon = moonposition.Node(e).Deg() + dpsi.Deg()
	case models.LunarNodeTrue:
		lon = moonposition.TrueNode(e).Deg() + dpsi.Deg()
	case models.DarkOrbitMean:
		lon = moonposition.Perigee(e).Deg() + 180 + dpsi.Deg()
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBody, body)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, fmt.Errorf("ephemeris: non-finite longitude for %s", body)
	}
	return astro.Normalize(lon), nil
}

// HouseCusps computes Placidus cusps for an observer at latitude/longitude
// (degrees, east positive).
func (Meeus) HouseCusps(jd, latitude, longitude float64, system byte) (models.HouseCusps, error) {
	var cusps models.HouseCusps
	if system != Placidus {
		return cusps, fmt.Errorf("%w: %q", ErrUnsupportedSystem, system)
	}

	if math.Abs(latitude) >= 90 {
		return cusps, fmt.Errorf("%w: latitude %.4f", ErrHouseComputation, latitude)
	}

	e := jde(jd)
	_, deps := nutation.Nutation(e)
	eps := (nutation.MeanObliquity(e) + deps).Rad()
	ramc := (unit.Angle(sidereal.Apparent(jd).Rad()) + unit.AngleFromDeg(longitude)).Rad()
	phi := unit.AngleFromDeg(latitude).Rad()

	mc := eclipticFromRA(ramc, eps)
	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))

	cusps[10] = mc
	cusps[1] = asc

	// Intermediate cusps trisect the diurnal (11, 12) and nocturnal (2, 3)
	// semi-arcs of the cusp's own declination.
	arcs := []struct {
		house int
		ra    func(sa float64) float64
	}{
		{11, func(sa float64) float64 { return ramc + sa/3 }},
		{12, func(sa float64) float64 { return ramc + 2*sa/3 }},
		{2, func(sa float64) float64 { return ramc + math.Pi - 2*(math.Pi-sa)/3 }},
		{3, func(sa float64) float64 { return ramc + math.Pi - (math.Pi-sa)/3 }},
	}
	for _, a := range arcs {
		lon, err := placidusCusp(a.ra, eps, phi)
		if err != nil {
			// Inside the polar circles some cusps never rise or set;
			// the quadrants are trisected in longitude instead.
			cusps = porphyryCusps(mc, asc)
			break
		}
		cusps[a.house] = lon
	}

	for h := 1; h <= 3; h++ {
		cusps[h+6] = cusps[h] + math.Pi
	}
	for h := 10; h <= 12; h++ {
		cusps[h-6] = cusps[h] + math.Pi
	}
	for h := 1; h <= 12; h++ {
		cusps[h] = astro.Normalize(unit.Angle(cusps[h]).Deg())
	}
	return cusps, nil
}

// porphyryCusps trisects the MC to Ascendant and Ascendant to IC arcs of
// the ecliptic. Cusps 4..9 are filled by the caller.
func porphyryCusps(mc, asc float64) models.HouseCusps {
	var cusps models.HouseCusps
	q := math.Mod(asc-mc+4*math.Pi, 2*math.Pi)
	if q > math.Pi {
		// the rising point must lie east of the meridian
		asc += math.Pi
		q -= math.Pi
	}
	cusps[10] = mc
	cusps[11] = mc + q/3
	cusps[12] = mc + 2*q/3
	cusps[1] = asc
	cusps[2] = asc + (math.Pi-q)/3
	cusps[3] = asc + 2*(math.Pi-q)/3
	return cusps
}

// eclipticFromRA maps a right ascension to the ecliptic longitude with the
// same right ascension, keeping the quadrant.
func eclipticFromRA(ra, eps float64) float64 {
	return math.Atan2(math.Sin(ra), math.Cos(ra)*math.Cos(eps))
}

// placidusCusp iterates raOf(semiArc(decl(lon))) until the cusp longitude settles.
func placidusCusp(raOf func(sa float64) float64, eps, phi float64) (float64, error) {
	lon := eclipticFromRA(raOf(math.Pi/2), eps)
	for i := 0; i < placidusMaxIter; i++ {
		decl := math.Asin(math.Sin(eps) * math.Sin(lon))
		x := -math.Tan(phi) * math.Tan(decl)
		if x < -1 || x > 1 {
			return 0, ErrHouseComputation
		}
		next := eclipticFromRA(raOf(math.Acos(x)), eps)
		if math.Abs(angleDiff(next, lon)) < placidusEpsilon {
			return next, nil
		}
		lon = next
	}
	return lon, nil
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
