package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
)

// PlaceHeader is the column layout of the durable place table.
var PlaceHeader = []string{"city", "lat", "lon", "country_iso"}

// CSVPlaceStore is an append-only place table kept in a CSV file.
type CSVPlaceStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVPlaceStore opens the table at path; the file is created on first append.
func NewCSVPlaceStore(path string) *CSVPlaceStore {
	return &CSVPlaceStore{path: path}
}

// LoadPlaces reads every valid row. Malformed rows are skipped.
func (s *CSVPlaceStore) LoadPlaces(_ context.Context) ([]models.GeoPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to open place table: %w", err)
	}
	defer file.Close()
	return ParsePlaces(file)
}

// ParsePlaces reads a place CSV with header from r.
func ParsePlaces(r io.Reader) ([]models.GeoPlace, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to read header: %w", err)
	}

	var places []models.GeoPlace
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read record: %w", err)
		}
		p, ok := parsePlaceRecord(record)
		if !ok {
			log.Debug().Strs("record", record).Msg("repository: skipping malformed place row")
			continue
		}
		places = append(places, p)
	}
	return places, nil
}

func parsePlaceRecord(record []string) (models.GeoPlace, bool) {
	if len(record) < 4 {
		return models.GeoPlace{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return models.GeoPlace{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return models.GeoPlace{}, false
	}
	p := models.GeoPlace{
		Name:        strings.TrimSpace(record[0]),
		Latitude:    lat,
		Longitude:   lon,
		CountryCode: strings.ToUpper(strings.TrimSpace(record[3])),
	}
	return p, p.Name != "" && p.Valid()
}

// AppendPlace writes one row, adding the header when the file is new.
func (s *CSVPlaceStore) AppendPlace(_ context.Context, p models.GeoPlace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, statErr := os.Stat(s.path)
	needHeader := errors.Is(statErr, os.ErrNotExist) || (statErr == nil && info.Size() == 0)

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("repository: failed to open place table: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if needHeader {
		if err := w.Write(PlaceHeader); err != nil {
			return fmt.Errorf("repository: failed to write header: %w", err)
		}
	}
	err = w.Write([]string{
		p.Name,
		strconv.FormatFloat(p.Latitude, 'f', -1, 64),
		strconv.FormatFloat(p.Longitude, 'f', -1, 64),
		p.CountryCode,
	})
	if err != nil {
		return fmt.Errorf("repository: failed to write place: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("repository: failed to flush place table: %w", err)
	}
	return nil
}
