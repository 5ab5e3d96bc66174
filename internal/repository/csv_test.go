package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"natal-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []models.GeoPlace
	}{
		{
			name:  "header only",
			input: "city,lat,lon,country_iso\n",
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "valid rows",
			input: "city,lat,lon,country_iso\nMoscow,55.7558,37.6173,RU\nKyiv,50.4501,30.5234,ua\n",
			expected: []models.GeoPlace{
				{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173, CountryCode: "RU"},
				{Name: "Kyiv", Latitude: 50.4501, Longitude: 30.5234, CountryCode: "UA"},
			},
		},
		{
			name:  "malformed rows are skipped",
			input: "city,lat,lon,country_iso\nMoscow,55.7558,37.6173,RU\nBroken,north,37,RU\nShort,1\nFar,95,0,XX\n,1,1,RU\n",
			expected: []models.GeoPlace{
				{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173, CountryCode: "RU"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places, err := ParsePlaces(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, places)
		})
	}
}

func TestCSVPlaceStore_LoadMissingFile(t *testing.T) {
	store := NewCSVPlaceStore(filepath.Join(t.TempDir(), "towns.csv"))
	places, err := store.LoadPlaces(context.Background())
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestCSVPlaceStore_AppendAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "towns.csv")
	store := NewCSVPlaceStore(path)

	moscow := models.GeoPlace{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173, CountryCode: "RU"}
	almaty := models.GeoPlace{Name: "Almaty", Latitude: 43.222, Longitude: 76.8512, CountryCode: "KZ"}
	require.NoError(t, store.AppendPlace(ctx, moscow))
	require.NoError(t, store.AppendPlace(ctx, almaty))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "city,lat,lon,country_iso\nMoscow,55.7558,37.6173,RU\nAlmaty,43.222,76.8512,KZ\n", string(raw))

	places, err := NewCSVPlaceStore(path).LoadPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.GeoPlace{moscow, almaty}, places)
}

func TestCSVPlaceStore_AppendToEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "towns.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store := NewCSVPlaceStore(path)
	require.NoError(t, store.AppendPlace(context.Background(), models.GeoPlace{Name: "Riga", Latitude: 56.9496, Longitude: 24.1052, CountryCode: "LV"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "city,lat,lon,country_iso\n"))
}
