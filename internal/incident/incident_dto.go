package incident

import "safety-api/internal/shared/optional"

type CreateIncidentRequest struct {
	DateTime       string  `json:"date_time" binding:"required"`
	LocationID     int     `json:"location_id" binding:"required"`
	IncidentType   string  `json:"incident_type" binding:"required,min=1,max=100"`
	Description    *string `json:"description"`
	InjurySeverity *string `json:"injury_severity" binding:"omitempty,max=50"`
	ReporterName   *string `json:"reporter_name" binding:"omitempty,max=100"`
	Status         *string `json:"status" binding:"omitempty,max=50"`
}

// UpdateIncidentRequest wraps the nullable columns in optional values so
// an explicit JSON null (clear the value) can be told apart from an
// absent key (leave it unchanged).
type UpdateIncidentRequest struct {
	DateTime       *string                `json:"date_time"`
	LocationID     *int                   `json:"location_id"`
	IncidentType   *string                `json:"incident_type" binding:"omitempty,min=1,max=100"`
	Description    optional.Value[string] `json:"description"`
	InjurySeverity optional.Value[string] `json:"injury_severity" binding:"omitempty,max=50"`
	ReporterName   optional.Value[string] `json:"reporter_name" binding:"omitempty,max=100"`
	Status         *string                `json:"status" binding:"omitempty,max=50"`
}

type IncidentResponse struct {
	IncidentID     int     `json:"incident_id"`
	DateTime       string  `json:"date_time"`
	LocationID     int     `json:"location_id"`
	IncidentType   string  `json:"incident_type"`
	Description    *string `json:"description"`
	InjurySeverity *string `json:"injury_severity"`
	ReporterName   *string `json:"reporter_name"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
