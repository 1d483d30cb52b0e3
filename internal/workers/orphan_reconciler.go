package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"citygis/internal/domain"
	"citygis/internal/metrics"
	"citygis/pkg/e"
)

type DocumentDeleter interface {
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type SpatialInserter interface {
	Insert(ctx context.Context, externalID, title string, lat, lng float64) error
}

type OrphanSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.OrphanRecord, error)
}

// OrphanReconciler drains the orphan queue and retries the store call the
// inline compensation could not finish. Retries per record are bounded; a
// record that still fails is logged in full for manual reconciliation.
type OrphanReconciler struct {
	queue       OrphanSource
	docs        DocumentDeleter
	spatial     SpatialInserter
	logger      *slog.Logger
	maxAttempts int
	popTimeout  time.Duration
}

func NewOrphanReconciler(
	queue OrphanSource,
	docs DocumentDeleter,
	spatial SpatialInserter,
	logger *slog.Logger,
	maxAttempts int,
	popTimeout time.Duration,
) *OrphanReconciler {
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	if popTimeout <= 0 {
		popTimeout = 5 * time.Second
	}
	return &OrphanReconciler{
		queue:       queue,
		docs:        docs,
		spatial:     spatial,
		logger:      logger,
		maxAttempts: maxAttempts,
		popTimeout:  popTimeout,
	}
}

func (w *OrphanReconciler) Run(ctx context.Context) {
	w.logger.Info("orphanReconciler STARTED")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("orphanReconciler STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		rec, err := w.queue.BRPop(ctx, w.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.reconcile(ctx, rec)
	}
}

func (w *OrphanReconciler) reconcile(ctx context.Context, rec domain.OrphanRecord) {
	w.logger.Info("reconciling orphan",
		slog.String("kind", string(rec.Kind)),
		slog.String("incident_id", rec.IncidentID),
	)

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		if ctx.Err() != nil {
			w.logger.Info("stop retries due to context cancel")
			return
		}

		var err error
		switch rec.Kind {
		case domain.OrphanDocument:
			_, err = w.docs.DeleteByID(ctx, rec.IncidentID)
		case domain.OrphanSpatialRow:
			err = w.spatial.Insert(ctx, rec.IncidentID, rec.Title, rec.Lat, rec.Lng)
			if errors.Is(err, e.ErrUniqueViolation) {
				// Row already present, someone fixed it before us.
				err = nil
			}
		default:
			w.logger.Error("unknown orphan kind, dropping", slog.String("kind", string(rec.Kind)))
			return
		}

		if err == nil {
			w.logger.Info("orphan reconciled",
				slog.String("kind", string(rec.Kind)),
				slog.String("incident_id", rec.IncidentID),
				slog.Int("attempt", attempt),
			)
			metrics.OrphansReconciledTotal.Inc()
			return
		}

		w.logger.Warn("reconcile attempt failed",
			slog.Int("attempt", attempt),
			slog.String("incident_id", rec.IncidentID),
			slog.Any("error", err),
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	// Out of attempts. Log the whole record so an operator can repair the
	// stores by hand.
	w.logger.Error("orphan NOT reconciled, manual action required",
		slog.String("kind", string(rec.Kind)),
		slog.String("incident_id", rec.IncidentID),
		slog.String("title", rec.Title),
		slog.Float64("lat", rec.Lat),
		slog.Float64("lng", rec.Lng),
		slog.String("reason", rec.Reason),
		slog.Time("occurred_at", rec.OccurredAt),
	)
}
