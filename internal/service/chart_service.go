package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"natal-api/internal/astro"
	"natal-api/internal/ephemeris"
	"natal-api/internal/metrics"
	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
)

// DSTThreshold is the offset difference above which a chart reports DST.
const DSTThreshold = 0.5

// PlaceResolver resolves place names
type PlaceResolver interface {
	Resolve(ctx context.Context, name string) (models.GeoPlace, error)
}

// OffsetResolver returns the historical UTC offset of a place on a date
type OffsetResolver interface {
	ResolveOffset(latitude, longitude float64, countryCode string, date time.Time) (float64, bool)
}

// OffsetGuesser produces an approximate, DST-unaware baseline offset
type OffsetGuesser interface {
	Guess(ctx context.Context, city, countryCode string) (float64, bool)
}

// ChartRequest describes one chart computation. Place, when set, skips
// name resolution. Baseline is the offset previously shown to the user.
type ChartRequest struct {
	City     string
	Place    *models.GeoPlace
	Moment   models.BirthMoment
	Baseline *float64
}

// ChartService runs the place -> offset -> instant -> placement pipeline
type ChartService struct {
	places         PlaceResolver
	offsets        OffsetResolver
	guesser        OffsetGuesser
	eph            ephemeris.Ephemeris
	fallbackOffset float64
}

// NewChartService creates a chart service. fallbackOffset is used whenever
// neither the resolver nor the caller provide an offset.
func NewChartService(places PlaceResolver, offsets OffsetResolver, guesser OffsetGuesser, eph ephemeris.Ephemeris, fallbackOffset float64) *ChartService {
	return &ChartService{
		places:         places,
		offsets:        offsets,
		guesser:        guesser,
		eph:            eph,
		fallbackOffset: fallbackOffset,
	}
}

// Baseline returns the approximate offset shown before DST correction
func (s *ChartService) Baseline(ctx context.Context, place models.GeoPlace) float64 {
	if s.guesser != nil {
		if v, ok := s.guesser.Guess(ctx, place.Name, place.CountryCode); ok {
			return v
		}
	}
	return s.fallbackOffset
}

// ComputeBodyPlacement places body at instant for an observer at latitude/longitude
func (s *ChartService) ComputeBodyPlacement(instant models.AstronomicalInstant, kind models.BodyKind, latitude, longitude float64) (models.ZodiacPlacement, models.HouseCusps, error) {
	cusps, err := s.cusps(instant, latitude, longitude)
	if err != nil {
		return models.ZodiacPlacement{}, models.HouseCusps{}, err
	}
	p, err := s.place(instant, kind, cusps)
	if err != nil {
		return models.ZodiacPlacement{}, models.HouseCusps{}, err
	}
	return p, cusps, nil
}

// MoonPhase classifies the Sun-Moon elongation at instant
func (s *ChartService) MoonPhase(instant models.AstronomicalInstant) (models.MoonPhase, error) {
	sun, err := s.eph.Longitude(float64(instant), models.Sun)
	if err != nil {
		return "", ephemerisError("sun longitude", err)
	}
	moon, err := s.eph.Longitude(float64(instant), models.Moon)
	if err != nil {
		return "", ephemerisError("moon longitude", err)
	}
	return astro.PhaseOf(astro.Elongation(sun, moon)), nil
}

// Nodes computes the mean lunar node axis
func (s *ChartService) Nodes(ctx context.Context, req ChartRequest) (*models.NodesReport, error) {
	header, instant, err := s.header(ctx, req)
	if err != nil {
		metrics.ChartsTotal.WithLabelValues("nodes", "rejected").Inc()
		return nil, err
	}

	north, south, err := s.nodes(instant, models.LunarNodeMean, header.Cusps)
	if err != nil {
		metrics.ChartsTotal.WithLabelValues("nodes", "failed").Inc()
		return nil, err
	}

	metrics.ChartsTotal.WithLabelValues("nodes", "ok").Inc()
	logChart("nodes", header)
	return &models.NodesReport{ChartHeader: header, NorthNode: north, SouthNode: south}, nil
}

// Lilith computes the mean apogee with the natal moon phase and node axis
func (s *ChartService) Lilith(ctx context.Context, req ChartRequest) (*models.LilithReport, error) {
	header, instant, err := s.header(ctx, req)
	if err != nil {
		metrics.ChartsTotal.WithLabelValues("lilith", "rejected").Inc()
		return nil, err
	}

	report, err := s.lilith(instant, header)
	if err != nil {
		metrics.ChartsTotal.WithLabelValues("lilith", "failed").Inc()
		return nil, err
	}

	metrics.ChartsTotal.WithLabelValues("lilith", "ok").Inc()
	logChart("lilith", header)
	return report, nil
}

func (s *ChartService) lilith(instant models.AstronomicalInstant, header models.ChartHeader) (*models.LilithReport, error) {
	lilith, err := s.place(instant, models.DarkOrbitMean, header.Cusps)
	if err != nil {
		return nil, err
	}
	phase, err := s.MoonPhase(instant)
	if err != nil {
		return nil, err
	}
	north, south, err := s.nodes(instant, models.LunarNodeMean, header.Cusps)
	if err != nil {
		return nil, err
	}
	return &models.LilithReport{
		ChartHeader: header,
		Lilith:      lilith,
		Phase:       phase,
		PhaseLabel:  astro.PhaseLabel(phase),
		NorthNode:   north,
		SouthNode:   south,
	}, nil
}

// header validates, resolves the place and offset, and computes the cusps.
// Validation runs before any timezone or ephemeris call.
func (s *ChartService) header(ctx context.Context, req ChartRequest) (models.ChartHeader, models.AstronomicalInstant, error) {
	if err := req.Moment.Validate(); err != nil {
		return models.ChartHeader{}, 0, fmt.Errorf("service: %w", err)
	}

	var place models.GeoPlace
	if req.Place != nil {
		place = *req.Place
	} else {
		p, err := s.places.Resolve(ctx, req.City)
		if err != nil {
			return models.ChartHeader{}, 0, err
		}
		place = p
	}

	offset, resolved := s.offsets.ResolveOffset(place.Latitude, place.Longitude, place.CountryCode, req.Moment.Date())
	if !resolved {
		offset = s.fallbackOffset
		if req.Baseline != nil {
			offset = *req.Baseline
		}
		log.Warn().Err(models.ErrTimezoneResolution).Str("city", place.Name).Str("date", req.Moment.DateString()).Float64("fallback", offset).
			Msg("service: using fallback offset")
	}

	baseline := offset
	if req.Baseline != nil {
		baseline = *req.Baseline
	}
	dst := math.Abs(offset-baseline) > DSTThreshold
	if dst {
		metrics.DSTAppliedTotal.Inc()
	}

	instant := astro.ToInstant(req.Moment, offset)
	cusps, err := s.cusps(instant, place.Latitude, place.Longitude)
	if err != nil {
		return models.ChartHeader{}, 0, err
	}

	return models.ChartHeader{
		Place:          place,
		Moment:         req.Moment,
		Offset:         offset,
		BaselineOffset: baseline,
		DSTApplied:     dst,
		OffsetResolved: resolved,
		JulianDay:      float64(instant),
		Cusps:          cusps,
	}, instant, nil
}

func (s *ChartService) cusps(instant models.AstronomicalInstant, latitude, longitude float64) (models.HouseCusps, error) {
	cusps, err := s.eph.HouseCusps(float64(instant), latitude, longitude, ephemeris.Placidus)
	if err != nil {
		return models.HouseCusps{}, ephemerisError("house cusps", err)
	}
	return cusps, nil
}

func (s *ChartService) place(instant models.AstronomicalInstant, kind models.BodyKind, cusps models.HouseCusps) (models.ZodiacPlacement, error) {
	lon, err := s.eph.Longitude(float64(instant), kind)
	if err != nil {
		return models.ZodiacPlacement{}, ephemerisError(kind.String()+" longitude", err)
	}
	return astro.Place(lon, cusps), nil
}

// nodes derives the south node from the computed north node.
func (s *ChartService) nodes(instant models.AstronomicalInstant, kind models.BodyKind, cusps models.HouseCusps) (north, south models.ZodiacPlacement, err error) {
	north, err = s.place(instant, kind, cusps)
	if err != nil {
		return north, south, err
	}
	return north, astro.Place(astro.SouthNode(north.Longitude), cusps), nil
}

func ephemerisError(op string, err error) error {
	return fmt.Errorf("service: %s: %w: %w", op, models.ErrEphemerisComputation, err)
}

func logChart(kind string, h models.ChartHeader) {
	log.Info().
		Str("type", kind).
		Str("city", h.Place.Name).
		Str("iso", h.Place.CountryCode).
		Str("date", h.Moment.DateString()).
		Str("time", h.Moment.TimeString()).
		Float64("tz", h.BaselineOffset).
		Float64("tz_offset", h.Offset).
		Bool("dst_applied", h.DSTApplied).
		Msg("chart computed")
}
