package domain

type ReportIncidentRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,category"`
	Latitude    float64 `json:"latitude" validate:"required,lat"`
	Longitude   float64 `json:"longitude" validate:"required,lng"`
	PostedBy    string  `json:"postedBy" validate:"omitempty"`
}

type UpdateStatusRequest struct {
	Status IncidentStatus `json:"status" validate:"required"`
}
