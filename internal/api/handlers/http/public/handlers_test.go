package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"citygis/internal/api/handlers/http/public"
	mock_public "citygis/internal/api/handlers/http/public/mocks"
	"citygis/internal/domain"
	"citygis/internal/geojson"
	"citygis/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestReportIncident_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_public.NewMockIncidentReporter(ctrl)
	queries := mock_public.NewMockMapQueries(ctrl)
	h := public.NewHandler(newTestLogger(), incidents, queries)

	reqBody := `{"title":"Pothole","description":"deep hole","category":"Road Damage","latitude":19.0,"longitude":72.8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	incidents.EXPECT().
		Report(gomock.Any(), domain.ReportIncidentRequest{
			Title:       "Pothole",
			Description: "deep hole",
			Category:    "Road Damage",
			Latitude:    19.0,
			Longitude:   72.8,
		}).
		Return(&domain.Incident{ID: "665f1c2e9d1e8a0001a1b2c3", Title: "Pothole", Status: domain.StatusReported}, nil).
		Times(1)

	h.ReportIncident(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["id"] != "665f1c2e9d1e8a0001a1b2c3" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestReportIncident_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(),
		mock_public.NewMockIncidentReporter(ctrl),
		mock_public.NewMockMapQueries(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(`{not json`))
	rr := httptest.NewRecorder()

	h.ReportIncident(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestReportIncident_ValidationError_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_public.NewMockIncidentReporter(ctrl)
	h := public.NewHandler(newTestLogger(), incidents, mock_public.NewMockMapQueries(ctrl))

	incidents.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrInvalidInput).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/",
		bytes.NewBufferString(`{"title":"x","description":"y","category":"Nonsense","latitude":0,"longitude":0}`))
	rr := httptest.NewRecorder()

	h.ReportIncident(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestReportIncident_StoreDown_503(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_public.NewMockIncidentReporter(ctrl)
	h := public.NewHandler(newTestLogger(), incidents, mock_public.NewMockMapQueries(ctrl))

	incidents.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrStore).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/",
		bytes.NewBufferString(`{"title":"Pothole","description":"d","category":"Road Damage","latitude":19,"longitude":72.8}`))
	rr := httptest.NewRecorder()

	h.ReportIncident(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rr.Code)
	}
}

func TestGetIncident_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_public.NewMockIncidentReporter(ctrl)
	h := public.NewHandler(newTestLogger(), incidents, mock_public.NewMockMapQueries(ctrl))

	incidents.EXPECT().
		Get(gomock.Any(), "000000000000000000000000").
		Return(nil, e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/000000000000000000000000", nil)
	req = addChiURLParam(req, "id", "000000000000000000000000")
	rr := httptest.NewRecorder()

	h.GetIncident(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestMapIncidents_GeoJSONShape(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queries := mock_public.NewMockMapQueries(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockIncidentReporter(ctrl), queries)

	queries.EXPECT().
		ListAll(gomock.Any()).
		Return(geojson.Collect([]domain.SpatialIncidentRow{
			{ExternalID: "a1", Title: "Pothole", Lat: 19.0, Lng: 72.8},
		}), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/map", nil)
	rr := httptest.NewRecorder()

	h.MapIncidents(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte(`"type":"FeatureCollection"`)) {
		t.Fatalf("missing FeatureCollection type: %s", body)
	}
	if !bytes.Contains([]byte(body), []byte(`"coordinates":[72.8,19]`)) {
		t.Fatalf("coordinates must be [lng,lat]: %s", body)
	}
}

func TestNearbyIncidents_MissingParams_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(),
		mock_public.NewMockIncidentReporter(ctrl),
		mock_public.NewMockMapQueries(ctrl),
	)

	cases := []string{
		"/api/v1/incidents/nearby",
		"/api/v1/incidents/nearby?lat=19",
		"/api/v1/incidents/nearby?lat=19&lng=72.8",
		"/api/v1/incidents/nearby?lat=abc&lng=72.8&radius=100",
	}

	for _, target := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()

		h.NearbyIncidents(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", target, rr.Code)
		}
	}
}

func TestNearbyIncidents_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queries := mock_public.NewMockMapQueries(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockIncidentReporter(ctrl), queries)

	queries.EXPECT().
		FindNearby(gomock.Any(), 19.0, 72.8, 500.0).
		Return(geojson.Collect(nil), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/nearby?lat=19&lng=72.8&radius=500", nil)
	rr := httptest.NewRecorder()

	h.NearbyIncidents(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"features":[]`)) {
		t.Fatalf("empty result must serialize features as [], body=%s", rr.Body.String())
	}
}
