package astro

import (
	"fmt"
	"math"

	"natal-api/internal/models"
)

// Signs are indexed from 0 (Aries) to 11 (Pisces).
var Signs = [12]string{
	"♈ Овен", "♉ Телец", "♊ Близнецы", "♋ Рак", "♌ Лев", "♍ Дева",
	"♎ Весы", "♏ Скорпион", "♐ Стрелец", "♑ Козерог", "♒ Водолей", "♓ Рыбы",
}

// Normalize reduces a longitude to [0, 360).
func Normalize(lon float64) float64 {
	d := math.Mod(lon, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// Degree splits the position within a sign into whole degrees and minutes.
func Degree(withinSign float64) (deg, min int) {
	whole := math.Floor(withinSign)
	return int(whole), int(math.Floor((withinSign - whole) * 60))
}

// Sign maps a longitude onto a sign index and the degree within that sign.
func Sign(lon float64) (index int, withinSign float64) {
	d := Normalize(lon)
	index = int(math.Floor(d / 30))
	if index > 11 {
		index = 11
	}
	return index, d - float64(index)*30
}

// Place derives the full symbolic placement of lon against the given cusps.
func Place(lon float64, cusps models.HouseCusps) models.ZodiacPlacement {
	idx, within := Sign(lon)
	deg, min := Degree(within)
	return models.ZodiacPlacement{
		Longitude:        Normalize(lon),
		SignIndex:        idx,
		Sign:             Signs[idx],
		DegreeWithinSign: within,
		Degrees:          deg,
		Minutes:          min,
		House:            HouseFor(lon, cusps),
		Formatted:        fmt.Sprintf("%d°%02d' %s", deg, min, Signs[idx]),
	}
}

// CircularDistance is the shorter arc between two longitudes, in [0, 180].
func CircularDistance(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// HouseFor returns the house whose cusp lies nearest to lon on the circle.
// This is a nearest-cusp rule, not cusp-to-cusp containment; ties keep the
// lower house number.
func HouseFor(lon float64, cusps models.HouseCusps) int {
	lon = Normalize(lon)
	best, bestDiff := 1, 360.0
	for house := 1; house <= 12; house++ {
		if diff := CircularDistance(lon, cusps[house]); diff < bestDiff {
			best, bestDiff = house, diff
		}
	}
	return best
}

// SouthNode is always the exact opposite of the north node.
func SouthNode(north float64) float64 {
	return Normalize(north + 180)
}
