package incident

import (
	"time"

	"safety-api/internal/location"
)

type SafetyIncident struct {
	ID             int       `gorm:"column:incident_id;primaryKey"`
	DateTime       time.Time `gorm:"column:date_time;not null"`
	LocationID     int       `gorm:"column:location_id;not null"`
	IncidentType   string    `gorm:"column:incident_type;size:100;not null"`
	Description    *string   `gorm:"column:description;type:text"`
	InjurySeverity *string   `gorm:"column:injury_severity;size:50"`
	ReporterName   *string   `gorm:"column:reporter_name;size:100"`
	Status         string    `gorm:"column:status;size:50"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Declared so migration emits the foreign key; never preloaded.
	Location *location.Location `gorm:"foreignKey:LocationID;references:ID"`
}

func (SafetyIncident) TableName() string {
	return "safety_incidents"
}
