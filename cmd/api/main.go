package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fare-api/internal/config"
	"fare-api/internal/fare"
	"fare-api/internal/geocoding"
	"fare-api/internal/handler"
	"fare-api/internal/logger"
	"fare-api/internal/repository"
	"fare-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// @title           Fare API
// @version         1.0
// @description     Taxi fare prediction from a linear model over trip distance and hour of day.
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	gin.SetMode(cfg.GinMode)

	model, err := fare.LoadModel(cfg.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ModelPath).Msg("cannot load fare model")
	}
	predictor, err := fare.NewPredictor(model)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build fare predictor")
	}
	log.Info().
		Strs("features", model.Features).
		Floats64("coefficients", model.Coefficients).
		Float64("intercept", model.Intercept).
		Msg("fare model loaded")

	var geocoder geocoding.Geocoder
	switch cfg.GeocoderProvider {
	case config.ProviderPostgres:
		// Database connection
		conn, err := pgxpool.New(context.Background(), cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		geocoder = geocoding.NewGazetteerGeocoder(repository.NewRepository(conn))
	default:
		geocoder, err = geocoding.NewGoogleGeocoder(cfg.GoogleMapsAPIKey, geocoding.GoogleOptions{
			Timeout:    cfg.GeocodeTimeout,
			MaxRetries: cfg.GeocodeMaxRetries,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create google geocoder")
		}
	}
	log.Info().Str("provider", cfg.GeocoderProvider).Msg("geocoder ready")

	if cfg.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis unreachable, geocode cache will miss")
		}
		geocoder = geocoding.NewCachedGeocoder(geocoder, rdb, cfg.GeocodeCacheTTL)
	}

	// Initialize layers
	fareService := service.NewFareService(geocoder, predictor)

	fareHandler := handler.NewFareHandler(fareService)
	geoCodeHandler := handler.NewGeoCodeHandler(geocoder)

	r := handler.NewRouter(fareHandler, geoCodeHandler, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return
	}

	log.Info().Msg("server stopped")
}
