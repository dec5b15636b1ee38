package location

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, loc *Location) error
	FindAll(ctx context.Context, skip, limit int) ([]Location, error)
	FindByID(ctx context.Context, id int) (*Location, error)
	Update(ctx context.Context, loc *Location) error
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

func (r *repository) Create(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *repository) FindAll(ctx context.Context, skip, limit int) ([]Location, error) {
	var locs []Location
	err := r.db.WithContext(ctx).
		Order("location_id").
		Offset(skip).
		Limit(limit).
		Find(&locs).Error
	return locs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Location, error) {
	var loc Location
	err := r.db.WithContext(ctx).First(&loc, "location_id = ?", id).Error
	return &loc, err
}

func (r *repository) Update(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Location{}, "location_id = ?", id).Error
}
