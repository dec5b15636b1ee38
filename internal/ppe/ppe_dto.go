package ppe

import "safety-api/internal/shared/optional"

type CreatePPEComplianceRequest struct {
	EmployeeID              int     `json:"employee_id" binding:"required"`
	AssessmentDate          *string `json:"assessment_date"`
	HelmetCompliance        *int    `json:"helmet_compliance" binding:"omitempty,gte=0,lte=100"`
	SafetyGlassesCompliance *int    `json:"safety_glasses_compliance" binding:"omitempty,gte=0,lte=100"`
	GlovesCompliance        *int    `json:"gloves_compliance" binding:"omitempty,gte=0,lte=100"`
	SafetyShoesCompliance   *int    `json:"safety_shoes_compliance" binding:"omitempty,gte=0,lte=100"`
	VestCompliance          *int    `json:"vest_compliance" binding:"omitempty,gte=0,lte=100"`
	Violations              *int    `json:"violations" binding:"omitempty,gte=0"`
	Status                  *string `json:"status" binding:"omitempty,max=50"`
	AssessorName            *string `json:"assessor_name" binding:"omitempty,max=100"`
}

// UpdatePPEComplianceRequest wraps the nullable columns in optional
// values so an explicit JSON null (clear the value) can be told apart
// from an absent key (leave it unchanged).
type UpdatePPEComplianceRequest struct {
	EmployeeID              *int                   `json:"employee_id"`
	AssessmentDate          optional.Value[string] `json:"assessment_date"`
	HelmetCompliance        optional.Value[int]    `json:"helmet_compliance" binding:"omitempty,gte=0,lte=100"`
	SafetyGlassesCompliance optional.Value[int]    `json:"safety_glasses_compliance" binding:"omitempty,gte=0,lte=100"`
	GlovesCompliance        optional.Value[int]    `json:"gloves_compliance" binding:"omitempty,gte=0,lte=100"`
	SafetyShoesCompliance   optional.Value[int]    `json:"safety_shoes_compliance" binding:"omitempty,gte=0,lte=100"`
	VestCompliance          optional.Value[int]    `json:"vest_compliance" binding:"omitempty,gte=0,lte=100"`
	Violations              *int                   `json:"violations" binding:"omitempty,gte=0"`
	Status                  *string                `json:"status" binding:"omitempty,max=50"`
	AssessorName            optional.Value[string] `json:"assessor_name" binding:"omitempty,max=100"`
}

// PPEComplianceResponse denormalizes the employee's composed name and
// department so compliance dashboards need no second request.
type PPEComplianceResponse struct {
	PPEID                   int     `json:"ppe_id"`
	Employee                string  `json:"employee"`
	Department              *string `json:"department"`
	AssessmentDate          *string `json:"assessment_date"`
	HelmetCompliance        *int    `json:"helmet_compliance"`
	SafetyGlassesCompliance *int    `json:"safety_glasses_compliance"`
	GlovesCompliance        *int    `json:"gloves_compliance"`
	SafetyShoesCompliance   *int    `json:"safety_shoes_compliance"`
	VestCompliance          *int    `json:"vest_compliance"`
	Violations              int     `json:"violations"`
	Status                  string  `json:"status"`
	Assessor                *string `json:"assessor"`
}
