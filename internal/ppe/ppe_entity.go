package ppe

import (
	"time"

	"safety-api/internal/employee"
)

type PPECompliance struct {
	ID                      int        `gorm:"column:ppe_id;primaryKey"`
	EmployeeID              int        `gorm:"column:employee_id;not null"`
	AssessmentDate          *time.Time `gorm:"column:assessment_date;type:date"`
	HelmetCompliance        *int       `gorm:"column:helmet_compliance"`
	SafetyGlassesCompliance *int       `gorm:"column:safety_glasses_compliance"`
	GlovesCompliance        *int       `gorm:"column:gloves_compliance"`
	SafetyShoesCompliance   *int       `gorm:"column:safety_shoes_compliance"`
	VestCompliance          *int       `gorm:"column:vest_compliance"`
	Violations              int        `gorm:"column:violations;default:0"`
	Status                  string     `gorm:"column:status;size:50"`
	AssessorName            *string    `gorm:"column:assessor_name;size:100"`
	CreatedAt               time.Time  `gorm:"column:created_at;autoCreateTime"`

	// Declared so migration emits the foreign key; never preloaded.
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (PPECompliance) TableName() string {
	return "ppe_compliance"
}
