package domain

import (
	"time"
)

type IncidentCategory string

const (
	CategoryRoadDamage   IncidentCategory = "Road Damage"
	CategoryWaterLeakage IncidentCategory = "Water Leakage"
	CategoryAccident     IncidentCategory = "Accident"
	CategoryGarbage      IncidentCategory = "Garbage"
	CategoryOther        IncidentCategory = "Other"
)

type IncidentStatus string

const (
	StatusReported   IncidentStatus = "Reported"
	StatusInProgress IncidentStatus = "In Progress"
	StatusResolved   IncidentStatus = "Resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusReported, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Location is the denormalized copy kept on the document for display.
// Spatial queries never read it; the spatial store's geometry is
// authoritative for anything distance-related.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Incident struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    IncidentCategory `json:"category"`
	Status      IncidentStatus   `json:"status"`
	Location    Location         `json:"location"`
	PostedBy    string           `json:"postedBy,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}
