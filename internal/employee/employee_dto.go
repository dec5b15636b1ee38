package employee

import "safety-api/internal/shared/optional"

type CreateEmployeeRequest struct {
	EmployeeName string  `json:"employee_name" binding:"required,min=1,max=100"`
	EmployeeCode string  `json:"employee_code" binding:"required,min=1,max=50"`
	FirstName    *string `json:"first_name" binding:"omitempty,max=50"`
	LastName     *string `json:"last_name" binding:"omitempty,max=50"`
	Department   *string `json:"department" binding:"omitempty,max=100"`
}

// UpdateEmployeeRequest wraps the nullable columns in optional values so
// an explicit JSON null (clear the value) can be told apart from an
// absent key (leave it unchanged).
type UpdateEmployeeRequest struct {
	EmployeeName *string                `json:"employee_name" binding:"omitempty,min=1,max=100"`
	EmployeeCode *string                `json:"employee_code" binding:"omitempty,min=1,max=50"`
	FirstName    optional.Value[string] `json:"first_name" binding:"omitempty,max=50"`
	LastName     optional.Value[string] `json:"last_name" binding:"omitempty,max=50"`
	Department   optional.Value[string] `json:"department" binding:"omitempty,max=100"`
}

// EmployeeResponse carries both the raw name columns and the composed
// display name the legacy API exposed as "name".
type EmployeeResponse struct {
	EmployeeID   int     `json:"employee_id"`
	Name         string  `json:"name"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Department   *string `json:"department"`
}
