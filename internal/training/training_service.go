package training

import (
	"context"
	"time"

	"safety-api/internal/shared/contextutil"
	trainingerrors "safety-api/internal/training/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTrainingRequest) (TrainingResponse, error)
	List(ctx context.Context, skip, limit int) ([]TrainingResponse, error)
	GetByID(ctx context.Context, id int) (TrainingResponse, error)
	Update(ctx context.Context, id int, req UpdateTrainingRequest) (TrainingResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("training.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create writes the training row and one join row per participant inside
// a single transaction: a failed participant insert rolls back the
// training row as well, so no orphaned session can survive.
func (s *service) Create(ctx context.Context, req CreateTrainingRequest) (TrainingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create training requested",
		zap.String("request_id", rid),
		zap.String("training_type", req.TrainingType),
		zap.Int("participants", len(req.Participants)),
	)

	completionDate, err := time.Parse(dateLayout, req.CompletionDate)
	if err != nil {
		s.logger.Warn("create training invalid completion_date",
			zap.String("completion_date", req.CompletionDate),
			zap.Error(err),
		)
		return TrainingResponse{}, trainingerrors.ErrInvalidCompletionDate
	}

	var expiryDate *time.Time
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		d, err := time.Parse(dateLayout, *req.ExpiryDate)
		if err != nil {
			s.logger.Warn("create training invalid expiry_date",
				zap.String("expiry_date", *req.ExpiryDate),
				zap.Error(err),
			)
			return TrainingResponse{}, trainingerrors.ErrInvalidExpiryDate
		}
		expiryDate = &d
	}

	tr := &SafetyTraining{
		TrainingType:   req.TrainingType,
		CompletionDate: completionDate,
		ExpiryDate:     expiryDate,
		TrainerName:    req.TrainerName,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create training begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return TrainingResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, tr); err != nil {
		s.logger.Error("create training persist failed", zap.Error(err))
		return TrainingResponse{}, mapWriteError(err, "creating")
	}

	for _, employeeID := range req.Participants {
		participant := &TrainingParticipant{
			TrainingID: tr.ID,
			EmployeeID: employeeID,
		}
		if err := qtx.CreateParticipant(ctx, participant); err != nil {
			s.logger.Error("create training participant persist failed",
				zap.Int("training_id", tr.ID),
				zap.Int("employee_id", employeeID),
				zap.Error(err),
			)
			return TrainingResponse{}, mapWriteError(err, "creating")
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create training commit failed", zap.String("request_id", rid), zap.Error(err))
		return TrainingResponse{}, err
	}

	s.logger.Info("create training success",
		zap.String("request_id", rid),
		zap.Int("training_id", tr.ID),
		zap.Int("participants", len(req.Participants)),
	)

	return mapToResponse(*tr, len(req.Participants)), nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]TrainingResponse, error) {
	s.logger.Debug("list trainings requested", zap.Int("skip", skip), zap.Int("limit", limit))

	trs, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list trainings failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]TrainingResponse, len(trs))
	for i, tr := range trs {
		count, err := s.repo.CountParticipants(ctx, tr.ID)
		if err != nil {
			s.logger.Error("count training participants failed",
				zap.Int("training_id", tr.ID),
				zap.Error(err),
			)
			return nil, mapRepositoryError(err)
		}
		res[i] = mapToResponse(tr, int(count))
	}

	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int) (TrainingResponse, error) {
	s.logger.Debug("get training by id requested", zap.Int("training_id", id))

	tr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TrainingResponse{}, mapRepositoryError(err)
	}

	count, err := s.repo.CountParticipants(ctx, tr.ID)
	if err != nil {
		return TrainingResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*tr, int(count)), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateTrainingRequest) (TrainingResponse, error) {
	s.logger.Debug("update training requested", zap.Int("training_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update training begin tx failed", zap.Error(tx.Error))
		return TrainingResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	tr, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TrainingResponse{}, mapRepositoryError(err)
	}

	if req.TrainingType != nil {
		tr.TrainingType = *req.TrainingType
	}
	if req.CompletionDate != nil {
		d, err := time.Parse(dateLayout, *req.CompletionDate)
		if err != nil {
			return TrainingResponse{}, trainingerrors.ErrInvalidCompletionDate
		}
		tr.CompletionDate = d
	}
	// Optional fields apply only when their key was present; a present
	// null clears the column.
	if req.ExpiryDate.Set {
		if req.ExpiryDate.Val == nil {
			tr.ExpiryDate = nil
		} else {
			d, err := time.Parse(dateLayout, *req.ExpiryDate.Val)
			if err != nil {
				return TrainingResponse{}, trainingerrors.ErrInvalidExpiryDate
			}
			tr.ExpiryDate = &d
		}
	}
	if req.TrainerName.Set {
		tr.TrainerName = req.TrainerName.Val
	}

	if err := qtx.Update(ctx, tr); err != nil {
		s.logger.Error("update training persist failed", zap.Error(err))
		return TrainingResponse{}, mapWriteError(err, "updating")
	}

	count, err := qtx.CountParticipants(ctx, tr.ID)
	if err != nil {
		return TrainingResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update training commit failed", zap.Error(err))
		return TrainingResponse{}, err
	}

	s.logger.Info("update training success", zap.Int("training_id", id))

	return mapToResponse(*tr, int(count)), nil
}

// Delete removes the join rows first, then the training, in one
// transaction.
func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete training requested", zap.Int("training_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete training begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.DeleteParticipantsByTraining(ctx, id); err != nil {
		s.logger.Error("delete training participants failed", zap.Error(err))
		return mapWriteError(err, "deleting")
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete training failed", zap.Error(err))
		return mapWriteError(err, "deleting")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete training commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete training success", zap.Int("training_id", id))
	return nil
}

func mapToResponse(tr SafetyTraining, participantsCount int) TrainingResponse {
	resp := TrainingResponse{
		TrainingID:        tr.ID,
		TrainingType:      tr.TrainingType,
		CompletionDate:    tr.CompletionDate.Format(dateLayout),
		TrainerName:       tr.TrainerName,
		CreatedAt:         tr.CreatedAt.Format(time.RFC3339),
		ParticipantsCount: participantsCount,
	}
	if tr.ExpiryDate != nil {
		d := tr.ExpiryDate.Format(dateLayout)
		resp.ExpiryDate = &d
	}
	return resp
}
