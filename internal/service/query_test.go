package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"citygis/internal/domain"
	"citygis/internal/service"
	mock_service "citygis/internal/service/mocks"
	"citygis/pkg/e"
)

func TestQueryService_ListAll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spatial := mock_service.NewMockSpatialRepository(ctrl)

	rows := []domain.SpatialIncidentRow{
		{ExternalID: "a1", Title: "Pothole", Lat: 19.0, Lng: 72.8},
		{ExternalID: "b2", Title: "Leak", Lat: 48.85, Lng: 2.35},
	}
	spatial.EXPECT().ScanAll(gomock.Any()).Return(rows, nil).Times(2)

	svc := service.NewQueryService(spatial, newTestLogger())

	fc, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 2 {
		t.Fatalf("unexpected collection: %+v", fc)
	}
	got := fc.Features[0].Geometry.Coordinates
	if got[0] != 72.8 || got[1] != 19.0 {
		t.Fatalf("coordinates must be [lng lat], got %v", got)
	}

	// Reading twice must not change either store.
	again, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(again.Features) != len(fc.Features) {
		t.Fatalf("repeat read differs: %d vs %d", len(again.Features), len(fc.Features))
	}
}

func TestQueryService_ListAll_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spatial := mock_service.NewMockSpatialRepository(ctrl)
	spatial.EXPECT().ScanAll(gomock.Any()).Return(nil, nil).Times(1)

	svc := service.NewQueryService(spatial, newTestLogger())

	fc, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fc.Features == nil {
		t.Fatalf("features must be an empty slice, not nil")
	}
}

func TestQueryService_FindNearby_RejectsBadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spatial := mock_service.NewMockSpatialRepository(ctrl)
	svc := service.NewQueryService(spatial, newTestLogger())

	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"lat too big", 90.01, 0},
		{"lat too small", -90.01, 0},
		{"lng too big", 0, 180.01},
		{"lng too small", 0, -180.01},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.FindNearby(context.Background(), tc.lat, tc.lng, 100)
			if !errors.Is(err, e.ErrInvalidCoordinates) {
				t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
			}
		})
	}
}

func TestQueryService_FindNearby_DelegatesRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spatial := mock_service.NewMockSpatialRepository(ctrl)

	spatial.EXPECT().
		RadiusSearch(gomock.Any(), 19.0, 72.8, 500.0).
		Return([]domain.SpatialIncidentRow{{ExternalID: "a1", Title: "Pothole", Lat: 19.0, Lng: 72.8}}, nil).
		Times(1)

	svc := service.NewQueryService(spatial, newTestLogger())

	fc, err := svc.FindNearby(context.Background(), 19.0, 72.8, 500)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fc.Features) != 1 || fc.Features[0].Properties.ID != "a1" {
		t.Fatalf("unexpected collection: %+v", fc)
	}
}

func TestQueryService_FindNearby_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spatial := mock_service.NewMockSpatialRepository(ctrl)
	spatial.EXPECT().
		RadiusSearch(gomock.Any(), 19.0, 72.8, 500.0).
		Return(nil, e.ErrStore).
		Times(1)

	svc := service.NewQueryService(spatial, newTestLogger())

	_, err := svc.FindNearby(context.Background(), 19.0, 72.8, 500)
	if !errors.Is(err, e.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}
