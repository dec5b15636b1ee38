package employee

// Employee column names follow the legacy schema. The employee code is a
// real unique index here; the legacy system only checked it in its seed
// script.
type Employee struct {
	ID           int     `gorm:"column:employee_id;primaryKey"`
	EmployeeName string  `gorm:"column:employee_name;size:100;not null"`
	EmployeeCode string  `gorm:"column:employee_code;size:50;not null;uniqueIndex:uq_employee_code"`
	FirstName    *string `gorm:"column:first_name;size:50"`
	LastName     *string `gorm:"column:last_name;size:50"`
	Department   *string `gorm:"column:department;size:100"`
}

func (Employee) TableName() string {
	return "employees"
}

// DisplayName composes "First Last" when both parts are present and falls
// back to the stored full name otherwise.
func (e Employee) DisplayName() string {
	if e.FirstName != nil && e.LastName != nil && *e.FirstName != "" && *e.LastName != "" {
		return *e.FirstName + " " + *e.LastName
	}
	return e.EmployeeName
}
