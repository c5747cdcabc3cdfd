package main

import (
	"flag"
	"os"

	"fare-api/internal/config"
	"fare-api/internal/logger"
	"fare-api/internal/training"

	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the taxi trips CSV file")
	out := flag.String("out", "", "Where to write the model (defaults to MODEL_PATH)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}
	if *out == "" {
		*out = cfg.ModelPath
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("cannot open dataset")
	}
	defer f.Close()

	result, err := training.ReadTrips(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read dataset")
	}
	trips := training.Clean(result.Trips)
	log.Info().
		Int("read", len(result.Trips)).
		Int("malformed", result.Dropped).
		Int("kept", len(trips)).
		Msg("dataset cleaned")

	model, err := training.Train(trips)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot train model")
	}

	if err := model.Save(*out); err != nil {
		log.Fatal().Err(err).Msg("cannot save model")
	}

	log.Info().
		Str("path", *out).
		Strs("features", model.Features).
		Floats64("coefficients", model.Coefficients).
		Float64("intercept", model.Intercept).
		Int("samples", model.Samples).
		Msg("model written")
}
