package ppe

import (
	"context"

	"gorm.io/gorm"
)

// EmployeeRef carries the columns needed to compose the denormalized
// employee display fields on a compliance response.
type EmployeeRef struct {
	EmployeeName string
	FirstName    *string
	LastName     *string
	Department   *string
}

//go:generate mockgen -source=ppe_repo.go -destination=mock/ppe_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, rec *PPECompliance) error
	FindAll(ctx context.Context, skip, limit int) ([]PPECompliance, error)
	FindByID(ctx context.Context, id int) (*PPECompliance, error)
	Update(ctx context.Context, rec *PPECompliance) error
	Delete(ctx context.Context, id int) error
	FindEmployeeRef(ctx context.Context, employeeID int) (*EmployeeRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, rec *PPECompliance) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context, skip, limit int) ([]PPECompliance, error) {
	var recs []PPECompliance
	err := r.db.WithContext(ctx).
		Order("ppe_id").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*PPECompliance, error) {
	var rec PPECompliance
	err := r.db.WithContext(ctx).First(&rec, "ppe_id = ?", id).Error
	return &rec, err
}

func (r *repository) Update(ctx context.Context, rec *PPECompliance) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&PPECompliance{}, "ppe_id = ?", id).Error
}

func (r *repository) FindEmployeeRef(ctx context.Context, employeeID int) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_name", "first_name", "last_name", "department").
		Where("employee_id = ?", employeeID).
		Take(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
