package incident

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=incident_repo.go -destination=mock/incident_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, inc *SafetyIncident) error
	FindAll(ctx context.Context, skip, limit int) ([]SafetyIncident, error)
	FindByID(ctx context.Context, id int) (*SafetyIncident, error)
	Update(ctx context.Context, inc *SafetyIncident) error
	Delete(ctx context.Context, id int) error
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

func (r *repository) Create(ctx context.Context, inc *SafetyIncident) error {
	return r.db.WithContext(ctx).Create(inc).Error
}

func (r *repository) FindAll(ctx context.Context, skip, limit int) ([]SafetyIncident, error) {
	var incs []SafetyIncident
	err := r.db.WithContext(ctx).
		Order("incident_id").
		Offset(skip).
		Limit(limit).
		Find(&incs).Error
	return incs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*SafetyIncident, error) {
	var inc SafetyIncident
	err := r.db.WithContext(ctx).First(&inc, "incident_id = ?", id).Error
	return &inc, err
}

func (r *repository) Update(ctx context.Context, inc *SafetyIncident) error {
	return r.db.WithContext(ctx).Save(inc).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&SafetyIncident{}, "incident_id = ?", id).Error
}
