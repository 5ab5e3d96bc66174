package timezone

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ringsaturn/tzf"
)

// ZoneStrategy maps coordinates and a country code to an IANA zone name.
type ZoneStrategy interface {
	Name() string
	Zone(latitude, longitude float64, countryCode string) (string, bool)
}

// FinderStrategy looks the zone up in the timezone polygon dataset.
type FinderStrategy struct {
	finder tzf.F
}

var (
	defaultFinder    tzf.F
	defaultFinderErr error
	finderOnce       sync.Once
)

// NewFinderStrategy returns the polygon lookup strategy. The finder is shared
// process-wide because it holds the whole boundary dataset in memory.
func NewFinderStrategy() (*FinderStrategy, error) {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			defaultFinderErr = fmt.Errorf("timezone: failed to initialize finder: %w", err)
			return
		}
		defaultFinder = f
	})
	if defaultFinderErr != nil {
		return nil, defaultFinderErr
	}
	return &FinderStrategy{finder: defaultFinder}, nil
}

func (s *FinderStrategy) Name() string { return "finder" }

func (s *FinderStrategy) Zone(latitude, longitude float64, _ string) (string, bool) {
	zone := s.finder.GetTimezoneName(longitude, latitude)
	return zone, zone != ""
}

// countryZones holds the principal zone of the post-Soviet states.
var countryZones = map[string]string{
	"RU": "Europe/Moscow",
	"UA": "Europe/Kyiv",
	"BY": "Europe/Minsk",
	"KZ": "Asia/Almaty",
	"UZ": "Asia/Tashkent",
	"LT": "Europe/Vilnius",
	"LV": "Europe/Riga",
	"EE": "Europe/Tallinn",
	"GE": "Asia/Tbilisi",
	"AM": "Asia/Yerevan",
	"AZ": "Asia/Baku",
}

// CountryStrategy maps a country code to a representative zone.
type CountryStrategy struct {
	zones map[string]string
}

func NewCountryStrategy() *CountryStrategy {
	return &CountryStrategy{zones: countryZones}
}

func (s *CountryStrategy) Name() string { return "country" }

func (s *CountryStrategy) Zone(_, _ float64, countryCode string) (string, bool) {
	zone, ok := s.zones[strings.ToUpper(strings.TrimSpace(countryCode))]
	return zone, ok
}

// DefaultStrategy always answers with a fixed baseline zone.
type DefaultStrategy struct {
	zone string
}

func NewDefaultStrategy(zone string) *DefaultStrategy {
	if zone == "" {
		zone = DefaultZone
	}
	return &DefaultStrategy{zone: zone}
}

func (s *DefaultStrategy) Name() string { return "default" }

func (s *DefaultStrategy) Zone(_, _ float64, _ string) (string, bool) {
	return s.zone, true
}
