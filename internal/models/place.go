package models

import "strings"

// GeoPlace represents a resolved birth place: its canonical name, geographic coordinates and ISO 3166 alpha-2 country code.
type GeoPlace struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}

// PlaceKey normalizes free-text place input into a cache key.
func PlaceKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Valid reports whether the coordinates are within geographic bounds.
func (p GeoPlace) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}
