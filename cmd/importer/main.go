package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fare-api/internal/config"
	"fare-api/internal/logger"
	"fare-api/internal/models"
	"fare-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the places CSV file (name,latitude,longitude)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	places, err := parseCSV(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse csv")
	}
	log.Info().Int("records", len(places)).Msg("parsed places")

	ctx := context.Background()

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)

	if err := repo.CreateSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	before, err := repo.CountPlaces(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count places")
	}

	inserted, err := repo.ImportPlaces(ctx, places)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert places")
	}

	// Verify data
	after, err := repo.CountPlaces(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count places")
	}
	if after-before != inserted {
		log.Fatal().Int64("inserted", inserted).Int64("counted", after-before).Msg("record count mismatch")
	}

	log.Info().Int64("inserted", inserted).Int64("total", after).Msg("import finished")
}

func parseCSV(filePath string) ([]models.Place, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readPlaces(file)
}

// readPlaces reads name,latitude,longitude rows after a header line.
func readPlaces(r io.Reader) ([]models.Place, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var places []models.Place
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		line, _ := reader.FieldPos(0)

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty place name", line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}

		places = append(places, models.Place{Name: name, Latitude: lat, Longitude: lon})
	}

	return places, nil
}
