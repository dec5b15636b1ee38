package inspection

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inspection_repo.go -destination=mock/inspection_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, insp *SafetyInspection) error
	FindAll(ctx context.Context, skip, limit int) ([]SafetyInspection, error)
	FindByID(ctx context.Context, id int) (*SafetyInspection, error)
	Update(ctx context.Context, insp *SafetyInspection) error
	Delete(ctx context.Context, id int) error
	FindLocationName(ctx context.Context, locationID int) (string, error)
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

func (r *repository) Create(ctx context.Context, insp *SafetyInspection) error {
	return r.db.WithContext(ctx).Create(insp).Error
}

func (r *repository) FindAll(ctx context.Context, skip, limit int) ([]SafetyInspection, error) {
	var insps []SafetyInspection
	err := r.db.WithContext(ctx).
		Order("inspection_id").
		Offset(skip).
		Limit(limit).
		Find(&insps).Error
	return insps, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*SafetyInspection, error) {
	var insp SafetyInspection
	err := r.db.WithContext(ctx).First(&insp, "inspection_id = ?", id).Error
	return &insp, err
}

func (r *repository) Update(ctx context.Context, insp *SafetyInspection) error {
	return r.db.WithContext(ctx).Save(insp).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&SafetyInspection{}, "inspection_id = ?", id).Error
}

// FindLocationName resolves the display name for the denormalized "area"
// field. Returns "" when the location row is gone.
func (r *repository) FindLocationName(ctx context.Context, locationID int) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("locations").
		Select("location_name").
		Where("location_id = ?", locationID).
		Scan(&name).Error
	return name, err
}
