package ephemeris

import (
	"testing"

	"natal-api/internal/astro"
	"natal-api/internal/models"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const j2000 = 2451545.0

func TestMeeus_Longitude(t *testing.T) {
	eph := NewMeeus()

	tests := []struct {
		body     models.BodyKind
		expected float64
		delta    float64
	}{
		{models.Sun, 280.37, 0.05},
		{models.LunarNodeMean, 125.04, 0.05},
		{models.DarkOrbitMean, 263.35, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			lon, err := eph.Longitude(j2000, tt.body)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, lon, tt.delta)
		})
	}
}

func TestMeeus_TrueNodeNearMeanNode(t *testing.T) {
	eph := NewMeeus()

	mean, err := eph.Longitude(j2000, models.LunarNodeMean)
	require.NoError(t, err)
	truth, err := eph.Longitude(j2000, models.LunarNodeTrue)
	require.NoError(t, err)

	// the true node oscillates within about 1.7° of the mean node
	assert.Less(t, astro.CircularDistance(mean, truth), 2.0)
}

func TestMeeus_LongitudeRange(t *testing.T) {
	eph := NewMeeus()
	for _, jd := range []float64{2415020.5, 2440587.5, j2000, 2460000.5} {
		for _, body := range []models.BodyKind{models.Sun, models.Moon, models.LunarNodeMean, models.LunarNodeTrue, models.DarkOrbitMean} {
			lon, err := eph.Longitude(jd, body)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, lon, 0.0)
			assert.Less(t, lon, 360.0)
		}
	}
}

func TestMeeus_UnsupportedBody(t *testing.T) {
	_, err := NewMeeus().Longitude(j2000, models.BodyKind(99))
	assert.ErrorIs(t, err, ErrUnsupportedBody)
}

func TestMeeus_HouseCusps(t *testing.T) {
	eph := NewMeeus()

	cusps, err := eph.HouseCusps(j2000, 55.7558, 37.6173, Placidus)
	require.NoError(t, err)
	assert.Zero(t, cusps[0])

	for h := 1; h <= 6; h++ {
		assert.InDelta(t, 180.0, astro.CircularDistance(cusps[h], cusps[h+6]), 1e-9, "house %d", h)
	}

	// cusps advance through the zodiac in house order
	for h := 1; h <= 12; h++ {
		next := cusps[h%12+1]
		step := astro.Normalize(next - cusps[h])
		assert.Greater(t, step, 0.0, "house %d", h)
		assert.Less(t, step, 180.0, "house %d", h)
	}
}

func TestMeeus_HouseCuspsEquator(t *testing.T) {
	cusps, err := NewMeeus().HouseCusps(j2000, 0, 0, Placidus)
	require.NoError(t, err)

	// at the equator the ascendant is 90° of right ascension from the MC
	assert.InDelta(t, 90.0, astro.CircularDistance(cusps[1], cusps[10]), 3.0)
}

func TestMeeus_HouseCuspsErrors(t *testing.T) {
	eph := NewMeeus()

	_, err := eph.HouseCusps(j2000, 90, 0, Placidus)
	assert.ErrorIs(t, err, ErrHouseComputation)

	_, err = eph.HouseCusps(j2000, -90, 0, Placidus)
	assert.ErrorIs(t, err, ErrHouseComputation)

	_, err = eph.HouseCusps(j2000, 55.75, 37.62, 'K')
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
}

func TestMeeus_HouseCuspsPolarFallback(t *testing.T) {
	eph := NewMeeus()

	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"murmansk", 68.97, 33.08},
		{"svalbard", 78.22, 15.65},
		{"near pole", 89, 0},
		{"antarctic", -75.1, 123.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for hour := 0; hour < 24; hour++ {
				jd := j2000 + float64(hour)/24
				cusps, err := eph.HouseCusps(jd, tt.lat, tt.lon, Placidus)
				require.NoError(t, err, "hour %d", hour)

				for h := 1; h <= 12; h++ {
					assert.GreaterOrEqual(t, cusps[h], 0.0)
					assert.Less(t, cusps[h], 360.0)
				}
				for h := 1; h <= 6; h++ {
					assert.InDelta(t, 180.0, astro.CircularDistance(cusps[h], cusps[h+6]), 1e-6)
				}
			}
		})
	}
}

func TestPorphyryCusps(t *testing.T) {
	deg := func(rad float64) float64 { return astro.Normalize(unit.Angle(rad).Deg()) }

	tests := []struct {
		name     string
		mc, asc  float64
		expected map[int]float64
	}{
		{
			name:     "ascendant east of meridian",
			mc:       300,
			asc:      30,
			expected: map[int]float64{10: 300, 11: 330, 12: 0, 1: 30, 2: 60, 3: 90},
		},
		{
			name:     "ascendant flipped east",
			mc:       0,
			asc:      270,
			expected: map[int]float64{10: 0, 11: 30, 12: 60, 1: 90, 2: 120, 3: 150},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cusps := porphyryCusps(unit.AngleFromDeg(tt.mc).Rad(), unit.AngleFromDeg(tt.asc).Rad())
			for h, want := range tt.expected {
				assert.InDelta(t, 0.0, astro.CircularDistance(want, deg(cusps[h])), 1e-6, "cusp %d", h)
			}
		})
	}
}
