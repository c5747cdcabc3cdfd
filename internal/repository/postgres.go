package repository

import (
	"context"
	"errors"
	"fmt"

	"fare-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS places (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		name_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('simple', name)
		) STORED,
		geom GEOGRAPHY(POINT, 4326) GENERATED ALWAYS AS (
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		) STORED
	);
	CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);
	CREATE INDEX IF NOT EXISTS places_name_tsvector_idx ON places USING GIN (name_tsvector);
`

// Repository is the PostgreSQL gazetteer of named places.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the places table and its indexes if they do not exist.
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ImportPlaces bulk loads places with COPY and returns the number of rows written.
// The geography column is derived from latitude and longitude by the database.
func (r *Repository) ImportPlaces(ctx context.Context, places []models.Place) (int64, error) {
	written, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"places"},
		[]string{"name", "latitude", "longitude"},
		pgx.CopyFromSlice(len(places), func(i int) ([]any, error) {
			p := places[i]
			return []any{p.Name, p.Latitude, p.Longitude}, nil
		}),
	)
	if err != nil {
		return written, fmt.Errorf("repository: failed to copy places: %w", err)
	}
	return written, nil
}

// CountPlaces returns the number of stored places.
func (r *Repository) CountPlaces(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM places").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count places: %w", err)
	}
	return count, nil
}

// FindPlace returns the best full-text match for name, or nil when nothing matches.
func (r *Repository) FindPlace(ctx context.Context, name string) (*models.Place, error) {
	sql := `
		SELECT
			id,
			name,
			latitude,
			longitude
		FROM places
		WHERE name_tsvector @@ plainto_tsquery('simple', $1)
		ORDER BY ts_rank(name_tsvector, plainto_tsquery('simple', $1)) DESC, id
		LIMIT 1
	`

	var place models.Place
	err := r.db.QueryRow(ctx, sql, name).Scan(
		&place.ID,
		&place.Name,
		&place.Latitude,
		&place.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute place query: %w", err)
	}

	return &place, nil
}
