package training

import "safety-api/internal/shared/optional"

type CreateTrainingRequest struct {
	TrainingType   string  `json:"training_type" binding:"required,min=1,max=100"`
	CompletionDate string  `json:"completion_date" binding:"required"`
	ExpiryDate     *string `json:"expiry_date"`
	TrainerName    *string `json:"trainer_name" binding:"omitempty,max=100"`
	Participants   []int   `json:"participants"`
}

// UpdateTrainingRequest wraps the nullable columns in optional values so
// an explicit JSON null (clear the value) can be told apart from an
// absent key (leave it unchanged).
type UpdateTrainingRequest struct {
	TrainingType   *string                `json:"training_type" binding:"omitempty,min=1,max=100"`
	CompletionDate *string                `json:"completion_date"`
	ExpiryDate     optional.Value[string] `json:"expiry_date"`
	TrainerName    optional.Value[string] `json:"trainer_name" binding:"omitempty,max=100"`
}

type TrainingResponse struct {
	TrainingID        int     `json:"training_id"`
	TrainingType      string  `json:"training_type"`
	CompletionDate    string  `json:"completion_date"`
	ExpiryDate        *string `json:"expiry_date"`
	TrainerName       *string `json:"trainer_name"`
	CreatedAt         string  `json:"created_at"`
	ParticipantsCount int     `json:"participants_count"`
}
