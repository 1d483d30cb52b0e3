package domain

// SpatialIncidentRow is one denormalized row from the spatial store:
// the cross-store join key, a display title and the point coordinates.
// ExternalID equals the Incident's document id.
type SpatialIncidentRow struct {
	ExternalID string  `json:"id"`
	Title      string  `json:"title"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}
