package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"natal-api/internal/inference"
	"natal-api/internal/metrics"
	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// PlaceRepository is the durable, append-only place table
type PlaceRepository interface {
	LoadPlaces(ctx context.Context) ([]models.GeoPlace, error)
	AppendPlace(ctx context.Context, p models.GeoPlace) error
}

// CityService resolves free-text place names to coordinates, learning unknown
// names through the inference service
type CityService struct {
	repo      PlaceRepository
	completer inference.Completer

	mu    sync.RWMutex
	cache map[string]models.GeoPlace
	group singleflight.Group
}

// NewCityService creates a city service with an empty cache
func NewCityService(repo PlaceRepository, completer inference.Completer) *CityService {
	return &CityService{
		repo:      repo,
		completer: completer,
		cache:     make(map[string]models.GeoPlace),
	}
}

// Load fills the cache from the durable table and returns the number of entries
func (s *CityService) Load(ctx context.Context) (int, error) {
	places, err := s.repo.LoadPlaces(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load places: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range places {
		s.cache[models.PlaceKey(p.Name)] = p
	}
	return len(s.cache), nil
}

// Lookup consults the cache only
func (s *CityService) Lookup(name string) (models.GeoPlace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.cache[models.PlaceKey(name)]
	return p, ok
}

// Resolve returns the place for name, or models.ErrPlaceNotFound
func (s *CityService) Resolve(ctx context.Context, name string) (models.GeoPlace, error) {
	key := models.PlaceKey(name)
	if key == "" {
		return models.GeoPlace{}, fmt.Errorf("service: empty place name: %w", models.ErrPlaceNotFound)
	}

	if p, ok := s.Lookup(key); ok {
		metrics.PlaceCacheHitsTotal.Inc()
		return p, nil
	}
	metrics.PlaceCacheMissesTotal.Inc()

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		if p, ok := s.Lookup(key); ok {
			return p, nil
		}
		return s.learn(ctx, key, strings.TrimSpace(name))
	})
	if err != nil {
		return models.GeoPlace{}, err
	}
	return v.(models.GeoPlace), nil
}

func (s *CityService) learn(ctx context.Context, key, input string) (models.GeoPlace, error) {
	reply, err := s.completer.Complete(ctx, placePrompt(input))
	if err != nil {
		log.Warn().Err(err).Str("city", input).Msg("service: place inference unavailable")
		return models.GeoPlace{}, fmt.Errorf("service: %q: %w", input, models.ErrPlaceNotFound)
	}

	place, ok := ParsePlaceReply(reply)
	if !ok {
		log.Info().Str("city", input).Str("reply", reply).Msg("service: place not recognized")
		return models.GeoPlace{}, fmt.Errorf("service: %q: %w", input, models.ErrPlaceNotFound)
	}

	s.mu.Lock()
	s.cache[key] = place
	s.mu.Unlock()

	if err := s.repo.AppendPlace(ctx, place); err != nil {
		log.Error().Err(err).Str("city", place.Name).Msg("service: failed to persist learned place")
	}
	log.Info().Str("input", input).Str("city", place.Name).Str("iso", place.CountryCode).Msg("service: learned new place")
	return place, nil
}

func placePrompt(input string) string {
	return fmt.Sprintf("Определи город по названию '%s'. "+
		"Ответь строго: Город латиницей;широта;долгота;ISO\n"+
		"Пример: Moscow;55.7558;37.6173;RU\nЕсли не уверен, напиши NONE", input)
}

// ParsePlaceReply parses a "Name;Latitude;Longitude;ISO" inference reply.
// Comma decimal separators are accepted. "NONE", empty or malformed replies
// yield ok == false.
func ParsePlaceReply(raw string) (models.GeoPlace, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "NONE") {
		return models.GeoPlace{}, false
	}

	parts := strings.Split(raw, ";")
	if len(parts) != 4 {
		return models.GeoPlace{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	lat, err := strconv.ParseFloat(strings.ReplaceAll(parts[1], ",", "."), 64)
	if err != nil {
		return models.GeoPlace{}, false
	}
	lon, err := strconv.ParseFloat(strings.ReplaceAll(parts[2], ",", "."), 64)
	if err != nil {
		return models.GeoPlace{}, false
	}

	place := models.GeoPlace{
		Name:        parts[0],
		Latitude:    lat,
		Longitude:   lon,
		CountryCode: strings.ToUpper(parts[3]),
	}
	if place.Name == "" || place.CountryCode == "" || !place.Valid() {
		return models.GeoPlace{}, false
	}
	return place, true
}
