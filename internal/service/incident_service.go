package service

import (
	"context"

	"citygis/internal/domain"
	"citygis/internal/geojson"
)

func (s *Service) Report(ctx context.Context, req domain.ReportIncidentRequest) (*domain.Incident, error) {
	return s.IncidentService.Report(ctx, req)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Incident, error) {
	return s.IncidentService.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Incident, error) {
	return s.IncidentService.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error {
	return s.IncidentService.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.IncidentService.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) (geojson.FeatureCollection, error) {
	return s.QueryService.ListAll(ctx)
}

func (s *Service) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) (geojson.FeatureCollection, error) {
	return s.QueryService.FindNearby(ctx, lat, lng, radiusMeters)
}
