package service

import (
	"context"
	"fmt"
	"log/slog"

	"citygis/internal/geojson"
	"citygis/internal/metrics"
	"citygis/pkg/e"
)

type queryService struct {
	spatial SpatialRepository
	logger  *slog.Logger
}

func NewQueryService(spatial SpatialRepository, logger *slog.Logger) QueryService {
	return &queryService{spatial: spatial, logger: logger}
}

// ListAll returns every spatial row as a FeatureCollection. Row order is
// whatever the store produced.
func (s *queryService) ListAll(ctx context.Context) (geojson.FeatureCollection, error) {
	rows, err := s.spatial.ScanAll(ctx)
	if err != nil {
		return geojson.FeatureCollection{}, err
	}
	return geojson.Collect(rows), nil
}

func (s *queryService) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) (geojson.FeatureCollection, error) {
	const op = "service.Query.FindNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return geojson.FeatureCollection{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	metrics.NearbyQueriesTotal.Inc()

	rows, err := s.spatial.RadiusSearch(ctx, lat, lng, radiusMeters)
	if err != nil {
		return geojson.FeatureCollection{}, err
	}

	s.logger.Debug("nearby search",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.Float64("radius_m", radiusMeters),
		slog.Int("hits", len(rows)),
	)

	return geojson.Collect(rows), nil
}
