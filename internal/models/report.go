package models

// ChartHeader is shared by all chart reports.
type ChartHeader struct {
	Place          GeoPlace    `json:"place"`
	Moment         BirthMoment `json:"moment"`
	Offset         float64     `json:"utc_offset"`
	BaselineOffset float64     `json:"baseline_offset"`
	DSTApplied     bool        `json:"dst_applied"`
	OffsetResolved bool        `json:"offset_resolved"`
	JulianDay      float64     `json:"julian_day"`
	Cusps          HouseCusps  `json:"cusps"`
}

// LilithReport is the full mean-apogee reading with phase and nodes.
type LilithReport struct {
	ChartHeader
	Lilith     ZodiacPlacement `json:"lilith"`
	Phase      MoonPhase       `json:"moon_phase"`
	PhaseLabel string          `json:"moon_phase_label"`
	NorthNode  ZodiacPlacement `json:"north_node"`
	SouthNode  ZodiacPlacement `json:"south_node"`
}

// NodesReport is the lunar node axis reading.
type NodesReport struct {
	ChartHeader
	NorthNode ZodiacPlacement `json:"north_node"`
	SouthNode ZodiacPlacement `json:"south_node"`
}
