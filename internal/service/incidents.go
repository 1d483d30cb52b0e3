package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"citygis/internal/domain"
	"citygis/internal/metrics"
	"citygis/pkg/e"
	"citygis/pkg/validator"

	"github.com/google/uuid"
)

// sagaState names the stages of a dual-write. The transitions are
// Started -> DocWritten -> SpatialWritten, or
// DocWritten -> CompensationIssued -> Compensated | OrphanWarning.
type sagaState string

const (
	sagaStarted            sagaState = "started"
	sagaDocWritten         sagaState = "doc_written"
	sagaSpatialWritten     sagaState = "spatial_written"
	sagaCompensationIssued sagaState = "compensation_issued"
	sagaCompensated        sagaState = "compensated"
	sagaOrphanWarning      sagaState = "orphan_warning"
)

type incidentService struct {
	docs         DocumentRepository
	spatial      SpatialRepository
	orphans      OrphanQueue
	logger       *slog.Logger
	storeTimeout time.Duration
}

func NewIncidentService(
	docs DocumentRepository,
	spatial SpatialRepository,
	orphans OrphanQueue,
	logger *slog.Logger,
	storeTimeout time.Duration,
) IncidentService {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &incidentService{
		docs:         docs,
		spatial:      spatial,
		orphans:      orphans,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

// Report runs the create saga: document first, then the spatial row keyed
// by the document's id. If the spatial write fails the document is deleted
// again, so the caller only ever observes "created in both stores" or
// "not created". A failed compensating delete leaves an orphan document;
// that is logged and queued for reconciliation, and the caller still gets
// the original failure.
func (s *incidentService) Report(ctx context.Context, req domain.ReportIncidentRequest) (*domain.Incident, error) {
	const op = "service.Incident.Report"

	if err := validator.ValidateStruct(&req); err != nil {
		metrics.ReportFailuresTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%s: %s: %w", op, err.Error(), e.ErrInvalidInput)
	}

	state := sagaStarted
	s.logger.Debug("report saga", slog.String("state", string(state)), slog.String("title", req.Title))

	docCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	created, err := s.docs.Create(docCtx, &domain.Incident{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.IncidentCategory(req.Category),
		Status:      domain.StatusReported,
		Location: domain.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		PostedBy: req.PostedBy,
	})
	cancel()
	if err != nil {
		metrics.ReportFailuresTotal.WithLabelValues("document").Inc()
		return nil, err
	}

	state = sagaDocWritten
	s.logger.Debug("report saga", slog.String("state", string(state)), slog.String("id", created.ID))

	spatialCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	err = s.spatial.Insert(spatialCtx, created.ID, created.Title, req.Latitude, req.Longitude)
	cancel()
	if err != nil {
		metrics.ReportFailuresTotal.WithLabelValues("spatial").Inc()
		s.compensateDocument(ctx, created, err)
		return nil, err
	}

	state = sagaSpatialWritten
	s.logger.Info("incident reported",
		slog.String("state", string(state)),
		slog.String("id", created.ID),
		slog.String("category", string(created.Category)),
	)
	metrics.ReportsTotal.Inc()

	return created, nil
}

// compensateDocument deletes the document created by a report whose
// spatial write failed. The delete is best effort: on failure the orphan
// is logged and queued, never retried inline.
func (s *incidentService) compensateDocument(ctx context.Context, created *domain.Incident, cause error) {
	state := sagaCompensationIssued
	s.logger.Warn("spatial write failed, compensating",
		slog.String("state", string(state)),
		slog.String("id", created.ID),
		slog.Any("error", cause),
	)
	metrics.CompensationsTotal.Inc()

	// Fresh deadline: the failed spatial call may have eaten the
	// caller's, and the delete must still be attempted.
	delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
	defer cancel()

	if _, err := s.docs.DeleteByID(delCtx, created.ID); err != nil {
		state = sagaOrphanWarning
		s.logger.Error("compensating delete failed, orphan document remains",
			slog.String("state", string(state)),
			slog.String("id", created.ID),
			slog.Any("error", err),
		)
		metrics.OrphansTotal.WithLabelValues(string(domain.OrphanDocument)).Inc()
		s.enqueueOrphan(delCtx, domain.OrphanRecord{
			ID:         uuid.New(),
			Kind:       domain.OrphanDocument,
			IncidentID: created.ID,
			Title:      created.Title,
			Lat:        created.Location.Latitude,
			Lng:        created.Location.Longitude,
			Reason:     err.Error(),
			OccurredAt: time.Now().UTC(),
		})
		return
	}

	state = sagaCompensated
	s.logger.Info("document rolled back after spatial failure",
		slog.String("state", string(state)),
		slog.String("id", created.ID),
	)
}

func (s *incidentService) enqueueOrphan(ctx context.Context, rec domain.OrphanRecord) {
	if s.orphans == nil {
		return
	}
	if err := s.orphans.Enqueue(ctx, rec); err != nil {
		// The log line above already carries everything an operator
		// needs; the queue is a convenience, not the record of truth.
		s.logger.Error("enqueue orphan failed",
			slog.String("incident_id", rec.IncidentID),
			slog.Any("error", err),
		)
	}
}

func (s *incidentService) Get(ctx context.Context, id string) (*domain.Incident, error) {
	return s.docs.GetByID(ctx, id)
}

func (s *incidentService) List(ctx context.Context) ([]*domain.Incident, error) {
	return s.docs.List(ctx)
}

func (s *incidentService) UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error {
	const op = "service.Incident.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	return s.docs.UpdateStatus(ctx, id, status)
}

// Delete runs the symmetric saga: the spatial row goes first, then the
// document. If the document delete fails the spatial row is re-inserted
// so both stores return to their pre-call state; if even that fails an
// orphaned (missing) spatial row is recorded.
func (s *incidentService) Delete(ctx context.Context, id string) error {
	const op = "service.Incident.Delete"

	getCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	doc, err := s.docs.GetByID(getCtx, id)
	cancel()
	if err != nil {
		return err
	}

	spatialCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	rowExisted, err := s.spatial.DeleteByExternalID(spatialCtx, id)
	cancel()
	if err != nil {
		return err
	}

	docCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	existed, err := s.docs.DeleteByID(docCtx, id)
	cancel()
	if err != nil {
		if rowExisted {
			s.compensateSpatialRow(ctx, doc, err)
		}
		return err
	}
	if !existed {
		// Deleted concurrently between the read and the delete; the
		// spatial row is gone too, so the invariant holds.
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	s.logger.Info("incident deleted", slog.String("id", id))
	return nil
}

// compensateSpatialRow restores a spatial row removed by a delete whose
// document-side delete failed.
func (s *incidentService) compensateSpatialRow(ctx context.Context, doc *domain.Incident, cause error) {
	s.logger.Warn("document delete failed, restoring spatial row",
		slog.String("state", string(sagaCompensationIssued)),
		slog.String("id", doc.ID),
		slog.Any("error", cause),
	)
	metrics.CompensationsTotal.Inc()

	insCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
	defer cancel()

	err := s.spatial.Insert(insCtx, doc.ID, doc.Title, doc.Location.Latitude, doc.Location.Longitude)
	if err != nil {
		s.logger.Error("spatial re-insert failed, spatial row missing for document",
			slog.String("state", string(sagaOrphanWarning)),
			slog.String("id", doc.ID),
			slog.Any("error", err),
		)
		metrics.OrphansTotal.WithLabelValues(string(domain.OrphanSpatialRow)).Inc()
		s.enqueueOrphan(insCtx, domain.OrphanRecord{
			ID:         uuid.New(),
			Kind:       domain.OrphanSpatialRow,
			IncidentID: doc.ID,
			Title:      doc.Title,
			Lat:        doc.Location.Latitude,
			Lng:        doc.Location.Longitude,
			Reason:     err.Error(),
			OccurredAt: time.Now().UTC(),
		})
		return
	}

	s.logger.Info("spatial row restored after document delete failure",
		slog.String("state", string(sagaCompensated)),
		slog.String("id", doc.ID),
	)
}
