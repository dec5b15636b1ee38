package training

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, tr *SafetyTraining) error
	CreateParticipant(ctx context.Context, p *TrainingParticipant) error
	FindAll(ctx context.Context, skip, limit int) ([]SafetyTraining, error)
	FindByID(ctx context.Context, id int) (*SafetyTraining, error)
	Update(ctx context.Context, tr *SafetyTraining) error
	Delete(ctx context.Context, id int) error
	DeleteParticipantsByTraining(ctx context.Context, trainingID int) error
	CountParticipants(ctx context.Context, trainingID int) (int64, error)
	FindParticipantsByTraining(ctx context.Context, trainingID int) ([]TrainingParticipant, error)
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

func (r *repository) Create(ctx context.Context, tr *SafetyTraining) error {
	return r.db.WithContext(ctx).Create(tr).Error
}

func (r *repository) CreateParticipant(ctx context.Context, p *TrainingParticipant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, skip, limit int) ([]SafetyTraining, error) {
	var trs []SafetyTraining
	err := r.db.WithContext(ctx).
		Order("training_id").
		Offset(skip).
		Limit(limit).
		Find(&trs).Error
	return trs, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*SafetyTraining, error) {
	var tr SafetyTraining
	err := r.db.WithContext(ctx).First(&tr, "training_id = ?", id).Error
	return &tr, err
}

func (r *repository) Update(ctx context.Context, tr *SafetyTraining) error {
	return r.db.WithContext(ctx).Save(tr).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&SafetyTraining{}, "training_id = ?", id).Error
}

func (r *repository) DeleteParticipantsByTraining(ctx context.Context, trainingID int) error {
	return r.db.WithContext(ctx).
		Delete(&TrainingParticipant{}, "training_id = ?", trainingID).Error
}

func (r *repository) CountParticipants(ctx context.Context, trainingID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TrainingParticipant{}).
		Where("training_id = ?", trainingID).
		Count(&count).Error
	return count, err
}

func (r *repository) FindParticipantsByTraining(ctx context.Context, trainingID int) ([]TrainingParticipant, error) {
	var ps []TrainingParticipant
	err := r.db.WithContext(ctx).
		Where("training_id = ?", trainingID).
		Find(&ps).Error
	return ps, err
}
