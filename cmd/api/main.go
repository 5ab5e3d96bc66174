package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "natal-api/docs"
	"natal-api/internal/config"
	"natal-api/internal/ephemeris"
	"natal-api/internal/handler"
	"natal-api/internal/inference"
	"natal-api/internal/repository"
	"natal-api/internal/service"
	"natal-api/internal/timezone"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//	@title			Natal API
//	@version		1.0
//	@description	Lilith, lunar node and moon phase charts with historical DST correction.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	config.SetupLogger()
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage: PostgreSQL when configured, process memory otherwise
	memory := repository.NewMemoryStore()
	var (
		accounts service.AccountStore = memory
		payments service.PaymentLog   = memory
		sessions service.SessionStore = memory
		places   service.PlaceRepository
	)

	var repo *repository.Repository
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo = repository.NewRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare db schema")
		}
		accounts, payments = repo, repo
	}

	switch config.PlaceStore {
	case "postgres":
		if repo == nil {
			log.Fatal().Msg("PLACE_STORE=postgres requires DB_SOURCE")
		}
		places = repo
	default:
		places = repository.NewCSVPlaceStore(config.PlaceTablePath)
	}

	if rdb := repository.OpenRedis(config.RedisAddr, config.RedisPassword, config.RedisDB); rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", config.RedisAddr).Msg("cannot connect to redis")
		}
		defer rdb.Close()
		sessions = repository.NewRedisSessionStore(rdb, config.SessionTTL)
	}

	completer, err := inference.New(ctx, config.InferenceProvider, inference.Options{
		APIKey:  providerKey(config),
		BaseURL: config.GroqBaseURL,
		Model:   providerModel(config),
		Timeout: config.InferenceTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create inference client")
	}

	// Timezone strategy chain: polygons, then country table, then baseline zone
	finder, err := timezone.NewFinderStrategy()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load timezone boundaries")
	}
	offsets := timezone.NewResolver(finder, timezone.NewCountryStrategy(), timezone.NewDefaultStrategy(config.BaselineZone))

	// Initialize layers
	cityService := service.NewCityService(places, completer)
	n, err := cityService.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load place table")
	}
	log.Info().Int("places", n).Str("store", config.PlaceStore).Msg("place table loaded")

	chartService := service.NewChartService(cityService, offsets, timezone.NewBaselineGuesser(completer), ephemeris.NewMeeus(), config.BaselineOffset)
	ledgerService := service.NewLedgerService(accounts, payments, service.NewAccessPolicy(config.Admins(), config.PaymentProviderToken))
	readingService := service.NewReadingService(ledgerService, completer)
	conversationService := service.NewConversationService(sessions, cityService, chartService)

	r := handler.NewRouter(handler.Handlers{
		Places:   handler.NewPlaceHandler(cityService),
		Timezone: handler.NewTimezoneHandler(offsets),
		Charts:   handler.NewChartHandler(chartService),
		Sessions: handler.NewSessionHandler(conversationService),
		Accounts: handler.NewAccountHandler(ledgerService, readingService),
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("addr", config.ServerAddress).
		Str("inference", config.InferenceProvider).
		Bool("payments", ledgerService.Policy().PaymentsEnabled).
		Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func providerKey(c config.Config) string {
	if c.InferenceProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.GroqAPIKey
}

func providerModel(c config.Config) string {
	if c.InferenceProvider == "gemini" {
		return c.GeminiModel
	}
	return c.GroqModel
}
