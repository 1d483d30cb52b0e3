package admin_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"citygis/internal/api/handlers/http/admin"
	mock_admin "citygis/internal/api/handlers/http/admin/mocks"
	"citygis/internal/domain"
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

func TestUpdateIncidentStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockAdminIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents)

	incidents.EXPECT().
		UpdateStatus(gomock.Any(), "665f1c2e9d1e8a0001a1b2c3", domain.StatusResolved).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/incidents/665f1c2e9d1e8a0001a1b2c3/status",
		bytes.NewBufferString(`{"status":"Resolved"}`))
	req = addChiURLParam(req, "id", "665f1c2e9d1e8a0001a1b2c3")
	rr := httptest.NewRecorder()

	h.UpdateIncidentStatus(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateIncidentStatus_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockAdminIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents)

	incidents.EXPECT().
		UpdateStatus(gomock.Any(), "665f1c2e9d1e8a0001a1b2c3", domain.IncidentStatus("Closed")).
		Return(e.ErrInvalidInput).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/incidents/665f1c2e9d1e8a0001a1b2c3/status",
		bytes.NewBufferString(`{"status":"Closed"}`))
	req = addChiURLParam(req, "id", "665f1c2e9d1e8a0001a1b2c3")
	rr := httptest.NewRecorder()

	h.UpdateIncidentStatus(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestDeleteIncident_NoContent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockAdminIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents)

	incidents.EXPECT().
		Delete(gomock.Any(), "665f1c2e9d1e8a0001a1b2c3").
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/incidents/665f1c2e9d1e8a0001a1b2c3", nil)
	req = addChiURLParam(req, "id", "665f1c2e9d1e8a0001a1b2c3")
	rr := httptest.NewRecorder()

	h.DeleteIncident(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

func TestDeleteIncident_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockAdminIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents)

	incidents.EXPECT().
		Delete(gomock.Any(), "000000000000000000000000").
		Return(e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/incidents/000000000000000000000000", nil)
	req = addChiURLParam(req, "id", "000000000000000000000000")
	rr := httptest.NewRecorder()

	h.DeleteIncident(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestDeleteIncident_DocStoreDown_503(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockAdminIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents)

	incidents.EXPECT().
		Delete(gomock.Any(), "665f1c2e9d1e8a0001a1b2c3").
		Return(e.ErrStore).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/incidents/665f1c2e9d1e8a0001a1b2c3", nil)
	req = addChiURLParam(req, "id", "665f1c2e9d1e8a0001a1b2c3")
	rr := httptest.NewRecorder()

	h.DeleteIncident(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rr.Code)
	}
}
