package training

import (
	"time"

	"safety-api/internal/employee"
)

type SafetyTraining struct {
	ID             int        `gorm:"column:training_id;primaryKey"`
	TrainingType   string     `gorm:"column:training_type;size:100;not null"`
	CompletionDate time.Time  `gorm:"column:completion_date;type:date;not null"`
	ExpiryDate     *time.Time `gorm:"column:expiry_date;type:date"`
	TrainerName    *string    `gorm:"column:trainer_name;size:100"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (SafetyTraining) TableName() string {
	return "safety_trainings"
}

// TrainingParticipant links a training session to an employee. Rows live
// and die with their training; deleting a training removes them in the
// same transaction.
type TrainingParticipant struct {
	ID         int `gorm:"column:id;primaryKey"`
	TrainingID int `gorm:"column:training_id;not null;index"`
	EmployeeID int `gorm:"column:employee_id;not null"`

	// Declared so migration emits the foreign keys; never preloaded.
	Training *SafetyTraining    `gorm:"foreignKey:TrainingID;references:ID"`
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (TrainingParticipant) TableName() string {
	return "training_participants"
}
