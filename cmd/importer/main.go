package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"natal-api/internal/config"
	"natal-api/internal/models"
	"natal-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the place CSV file to import (city,lat,lon,country_iso)")
	truncate := flag.Bool("truncate", false, "Empty the places table before importing")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	log.Info().Str("file", *file).Msg("starting import")

	places, err := parseCSV(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}
	log.Info().Int("records", len(places)).Msg("parsed records")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	cfg.SetupLogger()
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is not configured")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("cannot create tables")
	}

	before, err := countPlaces(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count places")
	}
	if *truncate {
		if _, err := conn.Exec(ctx, "TRUNCATE places RESTART IDENTITY"); err != nil {
			log.Fatal().Err(err).Msg("cannot truncate places")
		}
		before = 0
	}

	n, err := repository.CopyPlaces(ctx, conn, places)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	if err := verifyImport(ctx, conn, before+int(n)); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int64("records", n).Msg("import finished")
}

func parseCSV(filePath string) ([]models.GeoPlace, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return repository.ParsePlaces(file)
}

func countPlaces(ctx context.Context, conn *pgx.Conn) (int, error) {
	var count int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM places").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, expectedCount int) error {
	count, err := countPlaces(ctx, conn)
	if err != nil {
		return err
	}
	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	var name, iso string
	err = conn.QueryRow(ctx, "SELECT name, country_iso FROM places ORDER BY id DESC LIMIT 1").Scan(&name, &iso)
	if err != nil {
		return fmt.Errorf("failed to check sample row: %w", err)
	}
	log.Info().Str("name", name).Str("iso", iso).Msg("sample row")
	return nil
}
