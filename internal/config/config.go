package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Geocoder providers understood by the API server.
const (
	ProviderGoogle   = "google"
	ProviderPostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	ModelPath          string        `mapstructure:"MODEL_PATH"`
	DBSource           string        `mapstructure:"DB_SOURCE"`
	GeocoderProvider   string        `mapstructure:"GEOCODER_PROVIDER"`
	GoogleMapsAPIKey   string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GeocodeTimeout     time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	GeocodeMaxRetries  uint64        `mapstructure:"GEOCODE_MAX_RETRIES"`
	RedisAddress       string        `mapstructure:"REDIS_ADDRESS"`
	GeocodeCacheTTL    time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
}

// LoadConfig reads configuration from app.env in path, overridden by
// environment variables. A missing file is not an error. The result is not
// validated since the command line tools only need a subset of it.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("MODEL_PATH", "model/model.json")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("GEOCODER_PROVIDER", ProviderGoogle)
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("GEOCODE_TIMEOUT", 5*time.Second)
	v.SetDefault("GEOCODE_MAX_RETRIES", 2)
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("GEOCODE_CACHE_TTL", 24*time.Hour)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	config.GeocoderProvider = strings.ToLower(strings.TrimSpace(config.GeocoderProvider))

	origins := config.CORSAllowedOrigins[:0]
	for _, origin := range config.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	config.CORSAllowedOrigins = origins

	return config, nil
}

// Validate checks the settings the API server cannot start without.
func (c Config) Validate() error {
	switch c.GeocoderProvider {
	case ProviderGoogle:
		if c.GoogleMapsAPIKey == "" {
			return fmt.Errorf("config: GOOGLE_MAPS_API_KEY is required for the %s geocoder", ProviderGoogle)
		}
	case ProviderPostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required for the %s geocoder", ProviderPostgres)
		}
	default:
		return fmt.Errorf("config: unknown GEOCODER_PROVIDER %q", c.GeocoderProvider)
	}

	if c.ModelPath == "" {
		return fmt.Errorf("config: MODEL_PATH is required")
	}
	if c.GeocodeTimeout <= 0 {
		return fmt.Errorf("config: GEOCODE_TIMEOUT must be positive")
	}
	return nil
}
