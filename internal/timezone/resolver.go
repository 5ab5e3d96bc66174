// Package timezone resolves the historical UTC offset of a place on a date.
package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata" // historical rules must not depend on the host zoneinfo

	"natal-api/internal/metrics"

	"github.com/rs/zerolog/log"
)

// DefaultZone is used when neither coordinates nor country resolve.
const DefaultZone = "Europe/Moscow"

// Resolver tries its strategies in order and evaluates the first zone found.
type Resolver struct {
	strategies []ZoneStrategy
}

// NewResolver builds a resolver over an ordered strategy chain.
func NewResolver(strategies ...ZoneStrategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Zone returns the first zone name any strategy produces.
func (r *Resolver) Zone(latitude, longitude float64, countryCode string) (zone, strategy string, ok bool) {
	for _, s := range r.strategies {
		if s == nil {
			continue
		}
		if zone, ok := s.Zone(latitude, longitude, countryCode); ok {
			return zone, s.Name(), true
		}
	}
	return "", "", false
}

// ResolveOffset returns the UTC offset in hours in force for the place on the
// given date. ok is false when no offset could be determined; callers apply
// their own fallback.
func (r *Resolver) ResolveOffset(latitude, longitude float64, countryCode string, date time.Time) (offset float64, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("timezone: offset resolution panicked")
			offset, ok = 0, false
		}
	}()

	zone, strategy, found := r.Zone(latitude, longitude, countryCode)
	if !found {
		metrics.TimezoneResolutions.WithLabelValues("none").Inc()
		return 0, false
	}

	offset, err := OffsetAt(zone, date)
	if err != nil {
		log.Warn().Err(err).Str("zone", zone).Msg("timezone: offset lookup failed")
		metrics.TimezoneResolutions.WithLabelValues("error").Inc()
		return 0, false
	}
	metrics.TimezoneResolutions.WithLabelValues(strategy).Inc()
	return offset, true
}

// OffsetAt evaluates zone at local noon of date's calendar day. Noon never
// falls into a DST gap or overlap.
func OffsetAt(zone string, date time.Time) (float64, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, fmt.Errorf("timezone: unknown zone %q: %w", zone, err)
	}
	y, m, d := date.Date()
	_, seconds := time.Date(y, m, d, 12, 0, 0, 0, loc).Zone()
	return float64(seconds) / 3600, nil
}
