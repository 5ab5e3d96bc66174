// Package astro converts local birth moments into Julian Days and maps
// ecliptic longitudes onto zodiac signs, houses and lunar phases.
//
// Everything here is pure arithmetic; body positions and house cusps come
// from package ephemeris.
package astro
