package service

import (
	"context"

	"citygis/internal/domain"
	"citygis/internal/geojson"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// DocumentRepository is the authoritative incident store.
type DocumentRepository interface {
	Create(ctx context.Context, inc *domain.Incident) (*domain.Incident, error)
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context) ([]*domain.Incident, error)
	UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// SpatialRepository is the geometry store; it only ever holds one row per
// reported incident, keyed by the document id.
type SpatialRepository interface {
	Insert(ctx context.Context, externalID, title string, lat, lng float64) error
	RadiusSearch(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.SpatialIncidentRow, error)
	ScanAll(ctx context.Context) ([]domain.SpatialIncidentRow, error)
	DeleteByExternalID(ctx context.Context, externalID string) (bool, error)
}

// OrphanQueue receives records for incidents whose compensation failed.
type OrphanQueue interface {
	Enqueue(ctx context.Context, record domain.OrphanRecord) error
}

// IncidentService covers the write path: the report saga, the symmetric
// delete saga and the document-only reads and status updates.
type IncidentService interface {
	Report(ctx context.Context, req domain.ReportIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context) ([]*domain.Incident, error)
	UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error
	Delete(ctx context.Context, id string) error
}

// QueryService covers the read path against the spatial store.
type QueryService interface {
	ListAll(ctx context.Context) (geojson.FeatureCollection, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) (geojson.FeatureCollection, error)
}

type Service struct {
	IncidentService IncidentService
	QueryService    QueryService
}

func NewService(incidentService IncidentService, queryService QueryService) *Service {
	return &Service{
		IncidentService: incidentService,
		QueryService:    queryService,
	}
}
