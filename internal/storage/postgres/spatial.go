package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"citygis/internal/domain"
	"citygis/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SpatialRepo owns the incidents_spatial table. Geometry is a
// geometry(Point, 4326) column; every statement that builds a point uses
// ST_MakePoint(lng, lat) — X is longitude, Y is latitude.
type SpatialRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSpatialRepo(pool *pgxpool.Pool, logger *slog.Logger) *SpatialRepo {
	return &SpatialRepo{pool: pool, logger: logger}
}

func (r *SpatialRepo) Insert(ctx context.Context, externalID, title string, lat, lng float64) error {
	const op = "postgres.Spatial.Insert"

	if externalID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
INSERT INTO incidents_spatial (external_id, title, geom)
VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326))
`

	_, err := r.pool.Exec(ctx, query, externalID, title, lng, lat)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("external_id", externalID))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// RadiusSearch returns every row within radiusMeters of (lat, lng),
// measured as geodesic distance; the boundary itself is included.
// A non-positive radius yields an empty result without touching the store.
func (r *SpatialRepo) RadiusSearch(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.SpatialIncidentRow, error) {
	const op = "postgres.Spatial.RadiusSearch"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radiusMeters <= 0 {
		return []domain.SpatialIncidentRow{}, nil
	}

	// geom is geometry(4326) so plain ST_DWithin would compare degrees.
	// Casting to geography makes the distance great-circle meters.
	const query = `
SELECT external_id,
       title,
       ST_X(geom) AS lng,
       ST_Y(geom) AS lat
FROM incidents_spatial
WHERE ST_DWithin(
    geom::geography,
    ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
    $3
)
`

	rows, err := r.pool.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.SpatialIncidentRow, 0, 8)
	for rows.Next() {
		var row domain.SpatialIncidentRow
		if err := rows.Scan(&row.ExternalID, &row.Title, &row.Lng, &row.Lat); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

func (r *SpatialRepo) ScanAll(ctx context.Context) ([]domain.SpatialIncidentRow, error) {
	const op = "postgres.Spatial.ScanAll"

	const query = `
SELECT external_id,
       title,
       ST_X(geom) AS lng,
       ST_Y(geom) AS lat
FROM incidents_spatial
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.SpatialIncidentRow, 0, 16)
	for rows.Next() {
		var row domain.SpatialIncidentRow
		if err := rows.Scan(&row.ExternalID, &row.Title, &row.Lng, &row.Lat); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

// DeleteByExternalID removes the spatial row for an incident and reports
// whether one existed.
func (r *SpatialRepo) DeleteByExternalID(ctx context.Context, externalID string) (bool, error) {
	const op = "postgres.Spatial.DeleteByExternalID"

	const query = `DELETE FROM incidents_spatial WHERE external_id = $1`

	cmd, err := r.pool.Exec(ctx, query, externalID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("external_id", externalID))
		return false, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected() > 0, nil
}
