package inspection

import (
	"time"

	"safety-api/internal/location"
)

type SafetyInspection struct {
	ID             int       `gorm:"column:inspection_id;primaryKey"`
	InspectionType string    `gorm:"column:inspection_type;size:100;not null"`
	InspectionDate time.Time `gorm:"column:inspection_date;type:date;not null"`
	InspectionTime *string   `gorm:"column:inspection_time;size:8"`
	LocationID     int       `gorm:"column:location_id;not null"`
	InspectorName  *string   `gorm:"column:inspector_name;size:100"`
	Notes          *string   `gorm:"column:notes;type:text"`
	Status         string    `gorm:"column:status;size:50"`
	Score          *int      `gorm:"column:score"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`

	// Declared so migration emits the foreign key; never preloaded.
	Location *location.Location `gorm:"foreignKey:LocationID;references:ID"`
}

func (SafetyInspection) TableName() string {
	return "safety_inspections"
}
