package inspection

import "safety-api/internal/shared/optional"

type CreateInspectionRequest struct {
	InspectionType string  `json:"inspection_type" binding:"required,min=1,max=100"`
	InspectionDate string  `json:"inspection_date" binding:"required"`
	InspectionTime *string `json:"inspection_time"`
	LocationID     int     `json:"location_id" binding:"required"`
	InspectorName  *string `json:"inspector_name" binding:"omitempty,max=100"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status" binding:"omitempty,max=50"`
	Score          *int    `json:"score" binding:"omitempty,gte=0,lte=100"`
}

// UpdateInspectionRequest wraps the nullable columns in optional values
// so an explicit JSON null (clear the value) can be told apart from an
// absent key (leave it unchanged).
type UpdateInspectionRequest struct {
	InspectionType *string                `json:"inspection_type" binding:"omitempty,min=1,max=100"`
	InspectionDate *string                `json:"inspection_date"`
	InspectionTime optional.Value[string] `json:"inspection_time"`
	LocationID     *int                   `json:"location_id"`
	InspectorName  optional.Value[string] `json:"inspector_name" binding:"omitempty,max=100"`
	Notes          optional.Value[string] `json:"notes"`
	Status         *string                `json:"status" binding:"omitempty,max=50"`
	Score          optional.Value[int]    `json:"score" binding:"omitempty,gte=0,lte=100"`
}

// InspectionResponse is the legacy dashboard shape: the location name is
// denormalized into "area" and the date doubles as "completed_date"
// once the inspection is marked Completed.
type InspectionResponse struct {
	InspectionID  int      `json:"inspection_id"`
	Type          string   `json:"type"`
	Area          string   `json:"area"`
	Inspector     *string  `json:"inspector"`
	ScheduledDate string   `json:"scheduled_date"`
	CompletedDate *string  `json:"completed_date"`
	Status        string   `json:"status"`
	Score         *int     `json:"score"`
	Notes         *string  `json:"notes"`
	Findings      []string `json:"findings"`
}
