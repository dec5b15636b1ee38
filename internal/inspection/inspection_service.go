package inspection

import (
	"context"
	"time"

	inspectionerrors "safety-api/internal/inspection/errors"
	"safety-api/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	defaultStatus   = "Scheduled"
	statusCompleted = "Completed"
	unknownArea     = "Unknown"
)

//go:generate mockgen -source=inspection_service.go -destination=mock/inspection_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateInspectionRequest) (InspectionResponse, error)
	List(ctx context.Context, skip, limit int) ([]InspectionResponse, error)
	GetByID(ctx context.Context, id int) (InspectionResponse, error)
	Update(ctx context.Context, id int, req UpdateInspectionRequest) (InspectionResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inspection.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inspection.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateInspectionRequest) (InspectionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create inspection requested",
		zap.String("request_id", rid),
		zap.Int("location_id", req.LocationID),
		zap.String("inspection_type", req.InspectionType),
	)

	inspectionDate, err := time.Parse(dateLayout, req.InspectionDate)
	if err != nil {
		s.logger.Warn("create inspection invalid inspection_date",
			zap.String("inspection_date", req.InspectionDate),
			zap.Error(err),
		)
		return InspectionResponse{}, inspectionerrors.ErrInvalidInspectionDate
	}

	if req.InspectionTime != nil && *req.InspectionTime != "" {
		if _, err := time.Parse(timeLayout, *req.InspectionTime); err != nil {
			s.logger.Warn("create inspection invalid inspection_time",
				zap.String("inspection_time", *req.InspectionTime),
				zap.Error(err),
			)
			return InspectionResponse{}, inspectionerrors.ErrInvalidInspectionTime
		}
	}

	status := defaultStatus
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	insp := &SafetyInspection{
		InspectionType: req.InspectionType,
		InspectionDate: inspectionDate,
		InspectionTime: req.InspectionTime,
		LocationID:     req.LocationID,
		InspectorName:  req.InspectorName,
		Notes:          req.Notes,
		Status:         status,
		Score:          req.Score,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create inspection begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return InspectionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, insp); err != nil {
		s.logger.Error("create inspection persist failed", zap.Error(err))
		return InspectionResponse{}, mapWriteError(err, "creating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create inspection commit failed", zap.String("request_id", rid), zap.Error(err))
		return InspectionResponse{}, err
	}

	s.logger.Info("create inspection success",
		zap.String("request_id", rid),
		zap.Int("inspection_id", insp.ID),
	)

	return s.toResponse(ctx, *insp), nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]InspectionResponse, error) {
	s.logger.Debug("list inspections requested", zap.Int("skip", skip), zap.Int("limit", limit))

	insps, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list inspections failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]InspectionResponse, len(insps))
	for i, insp := range insps {
		res[i] = s.toResponse(ctx, insp)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int) (InspectionResponse, error) {
	s.logger.Debug("get inspection by id requested", zap.Int("inspection_id", id))

	insp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InspectionResponse{}, mapRepositoryError(err)
	}

	return s.toResponse(ctx, *insp), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateInspectionRequest) (InspectionResponse, error) {
	s.logger.Debug("update inspection requested", zap.Int("inspection_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update inspection begin tx failed", zap.Error(tx.Error))
		return InspectionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	insp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return InspectionResponse{}, mapRepositoryError(err)
	}

	if req.InspectionType != nil {
		insp.InspectionType = *req.InspectionType
	}
	if req.InspectionDate != nil {
		d, err := time.Parse(dateLayout, *req.InspectionDate)
		if err != nil {
			return InspectionResponse{}, inspectionerrors.ErrInvalidInspectionDate
		}
		insp.InspectionDate = d
	}
	// Optional fields apply only when their key was present; a present
	// null clears the column.
	if req.InspectionTime.Set {
		if req.InspectionTime.Val != nil && *req.InspectionTime.Val != "" {
			if _, err := time.Parse(timeLayout, *req.InspectionTime.Val); err != nil {
				return InspectionResponse{}, inspectionerrors.ErrInvalidInspectionTime
			}
		}
		insp.InspectionTime = req.InspectionTime.Val
	}
	if req.LocationID != nil {
		insp.LocationID = *req.LocationID
	}
	if req.InspectorName.Set {
		insp.InspectorName = req.InspectorName.Val
	}
	if req.Notes.Set {
		insp.Notes = req.Notes.Val
	}
	if req.Status != nil {
		insp.Status = *req.Status
	}
	if req.Score.Set {
		insp.Score = req.Score.Val
	}

	if err := qtx.Update(ctx, insp); err != nil {
		s.logger.Error("update inspection persist failed", zap.Error(err))
		return InspectionResponse{}, mapWriteError(err, "updating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update inspection commit failed", zap.Error(err))
		return InspectionResponse{}, err
	}

	s.logger.Info("update inspection success", zap.Int("inspection_id", id))

	return s.toResponse(ctx, *insp), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete inspection requested", zap.Int("inspection_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete inspection begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete inspection failed", zap.Error(err))
		return mapWriteError(err, "deleting")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete inspection commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete inspection success", zap.Int("inspection_id", id))
	return nil
}

// toResponse denormalizes the location name into "area", falling back to
// "Unknown" when the location row cannot be found.
func (s *service) toResponse(ctx context.Context, insp SafetyInspection) InspectionResponse {
	area := unknownArea
	if name, err := s.repo.FindLocationName(ctx, insp.LocationID); err == nil && name != "" {
		area = name
	} else if err != nil {
		s.logger.Warn("resolve inspection area failed",
			zap.Int("location_id", insp.LocationID),
			zap.Error(err),
		)
	}

	var completedDate *string
	if insp.Status == statusCompleted {
		d := insp.InspectionDate.Format(dateLayout)
		completedDate = &d
	}

	return InspectionResponse{
		InspectionID:  insp.ID,
		Type:          insp.InspectionType,
		Area:          area,
		Inspector:     insp.InspectorName,
		ScheduledDate: insp.InspectionDate.Format(dateLayout),
		CompletedDate: completedDate,
		Status:        insp.Status,
		Score:         insp.Score,
		Notes:         insp.Notes,
		Findings:      []string{},
	}
}
