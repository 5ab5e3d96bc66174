package models

// AstronomicalInstant is a Julian Day in Universal Time.
type AstronomicalInstant float64

// BodyKind selects the ecliptic point computed by the ephemeris.
type BodyKind int

const (
	DarkOrbitMean BodyKind = iota // mean lunar apogee (Lilith)
	LunarNodeMean
	LunarNodeTrue
	Sun
	Moon
)

func (b BodyKind) String() string {
	switch b {
	case DarkOrbitMean:
		return "lilith"
	case LunarNodeMean:
		return "mean_node"
	case LunarNodeTrue:
		return "true_node"
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	}
	return "unknown"
}

// HouseCusps holds Placidus cusp longitudes. Index 0 is unused; 1-12 are the house cusps.
type HouseCusps [13]float64

// ZodiacPlacement is the symbolic position of an ecliptic longitude.
type ZodiacPlacement struct {
	Longitude        float64 `json:"longitude"`
	SignIndex        int     `json:"sign_index"`
	Sign             string  `json:"sign"`
	DegreeWithinSign float64 `json:"degree_within_sign"`
	Degrees          int     `json:"degrees"`
	Minutes          int     `json:"minutes"`
	House            int     `json:"house"`
	Formatted        string  `json:"formatted"`
}

// MoonPhase classifies Sun-Moon elongation into five bands.
type MoonPhase string

const (
	PhaseNew          MoonPhase = "new"
	PhaseFirstQuarter MoonPhase = "first_quarter"
	PhaseFull         MoonPhase = "full"
	PhaseLastQuarter  MoonPhase = "last_quarter"
	PhaseWaning       MoonPhase = "waning"
)
