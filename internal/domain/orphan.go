package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrphanKind string

const (
	// OrphanDocument: the spatial insert failed and the compensating
	// document delete failed too, so a document without a spatial row
	// may remain.
	OrphanDocument OrphanKind = "document"
	// OrphanSpatialRow: a delete removed the spatial row, the document
	// delete failed, and re-inserting the spatial row failed as well.
	OrphanSpatialRow OrphanKind = "spatial_row"
)

// OrphanRecord carries everything a reconciler needs to restore the
// cross-store invariant for one incident.
type OrphanRecord struct {
	ID         uuid.UUID  `json:"id"`
	Kind       OrphanKind `json:"kind"`
	IncidentID string     `json:"incident_id"`
	Title      string     `json:"title"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	Reason     string     `json:"reason"`
	OccurredAt time.Time  `json:"occurred_at"`
}
