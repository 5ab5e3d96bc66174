package service

import (
	"context"
	"testing"
	"time"

	"natal-api/internal/models"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// genai pulls in opencensus, whose view worker starts in init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// MockCompleter is a mock implementation of inference.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockPlaceRepository is a mock implementation of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) LoadPlaces(ctx context.Context) ([]models.GeoPlace, error) {
	args := m.Called(ctx)
	places, _ := args.Get(0).([]models.GeoPlace)
	return places, args.Error(1)
}

func (m *MockPlaceRepository) AppendPlace(ctx context.Context, p models.GeoPlace) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// staticOffsets answers every lookup with the same offset
type staticOffsets struct {
	offset float64
	ok     bool
	calls  int
}

func (s *staticOffsets) ResolveOffset(_, _ float64, _ string, _ time.Time) (float64, bool) {
	s.calls++
	return s.offset, s.ok
}

// staticGuesser answers every baseline guess with the same value
type staticGuesser struct {
	offset float64
	ok     bool
}

func (g staticGuesser) Guess(context.Context, string, string) (float64, bool) {
	return g.offset, g.ok
}

// fakeEphemeris returns fixed longitudes and evenly spaced cusps
type fakeEphemeris struct {
	longitudes map[models.BodyKind]float64
	err        error
	calls      int
}

func (f *fakeEphemeris) Longitude(_ float64, body models.BodyKind) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.longitudes[body], nil
}

func (f *fakeEphemeris) HouseCusps(_, _, _ float64, _ byte) (models.HouseCusps, error) {
	f.calls++
	if f.err != nil {
		return models.HouseCusps{}, f.err
	}
	var c models.HouseCusps
	for i := 1; i <= 12; i++ {
		c[i] = float64(i-1) * 30
	}
	return c, nil
}

// staticPlaces resolves a fixed set of names
type staticPlaces map[string]models.GeoPlace

func (s staticPlaces) Resolve(_ context.Context, name string) (models.GeoPlace, error) {
	if p, ok := s[models.PlaceKey(name)]; ok {
		return p, nil
	}
	return models.GeoPlace{}, models.ErrPlaceNotFound
}

var moscow = models.GeoPlace{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173, CountryCode: "RU"}
