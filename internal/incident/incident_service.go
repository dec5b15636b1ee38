package incident

import (
	"context"
	"time"

	incidenterrors "safety-api/internal/incident/errors"
	"safety-api/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultStatus = "Open"

//go:generate mockgen -source=incident_service.go -destination=mock/incident_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateIncidentRequest) (IncidentResponse, error)
	List(ctx context.Context, skip, limit int) ([]IncidentResponse, error)
	GetByID(ctx context.Context, id int) (IncidentResponse, error)
	Update(ctx context.Context, id int, req UpdateIncidentRequest) (IncidentResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("incident.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("incident.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// parseDateTime accepts RFC 3339 and the timezone-less variant clients
// commonly send.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

func (s *service) Create(ctx context.Context, req CreateIncidentRequest) (IncidentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create incident requested",
		zap.String("request_id", rid),
		zap.Int("location_id", req.LocationID),
		zap.String("incident_type", req.IncidentType),
	)

	occurredAt, err := parseDateTime(req.DateTime)
	if err != nil {
		s.logger.Warn("create incident invalid date_time",
			zap.String("date_time", req.DateTime),
			zap.Error(err),
		)
		return IncidentResponse{}, incidenterrors.ErrInvalidDateTime
	}

	status := defaultStatus
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	inc := &SafetyIncident{
		DateTime:       occurredAt,
		LocationID:     req.LocationID,
		IncidentType:   req.IncidentType,
		Description:    req.Description,
		InjurySeverity: req.InjurySeverity,
		ReporterName:   req.ReporterName,
		Status:         status,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create incident begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return IncidentResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, inc); err != nil {
		s.logger.Error("create incident persist failed", zap.Error(err))
		return IncidentResponse{}, mapWriteError(err, "creating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create incident commit failed", zap.String("request_id", rid), zap.Error(err))
		return IncidentResponse{}, err
	}

	s.logger.Info("create incident success",
		zap.String("request_id", rid),
		zap.Int("incident_id", inc.ID),
	)

	return mapToResponse(*inc), nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]IncidentResponse, error) {
	s.logger.Debug("list incidents requested", zap.Int("skip", skip), zap.Int("limit", limit))

	incs, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list incidents failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(incs), nil
}

func (s *service) GetByID(ctx context.Context, id int) (IncidentResponse, error) {
	s.logger.Debug("get incident by id requested", zap.Int("incident_id", id))

	inc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IncidentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*inc), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateIncidentRequest) (IncidentResponse, error) {
	s.logger.Debug("update incident requested", zap.Int("incident_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update incident begin tx failed", zap.Error(tx.Error))
		return IncidentResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	inc, err := qtx.FindByID(ctx, id)
	if err != nil {
		return IncidentResponse{}, mapRepositoryError(err)
	}

	if req.DateTime != nil {
		occurredAt, err := parseDateTime(*req.DateTime)
		if err != nil {
			s.logger.Warn("update incident invalid date_time",
				zap.String("date_time", *req.DateTime),
				zap.Error(err),
			)
			return IncidentResponse{}, incidenterrors.ErrInvalidDateTime
		}
		inc.DateTime = occurredAt
	}
	if req.LocationID != nil {
		inc.LocationID = *req.LocationID
	}
	if req.IncidentType != nil {
		inc.IncidentType = *req.IncidentType
	}
	// Optional fields apply only when their key was present; a present
	// null clears the column.
	if req.Description.Set {
		inc.Description = req.Description.Val
	}
	if req.InjurySeverity.Set {
		inc.InjurySeverity = req.InjurySeverity.Val
	}
	if req.ReporterName.Set {
		inc.ReporterName = req.ReporterName.Val
	}
	if req.Status != nil {
		inc.Status = *req.Status
	}

	if err := qtx.Update(ctx, inc); err != nil {
		s.logger.Error("update incident persist failed", zap.Error(err))
		return IncidentResponse{}, mapWriteError(err, "updating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update incident commit failed", zap.Error(err))
		return IncidentResponse{}, err
	}

	s.logger.Info("update incident success", zap.Int("incident_id", id))

	return mapToResponse(*inc), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete incident requested", zap.Int("incident_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete incident begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete incident failed", zap.Error(err))
		return mapWriteError(err, "deleting")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete incident commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete incident success", zap.Int("incident_id", id))
	return nil
}

func mapToResponse(inc SafetyIncident) IncidentResponse {
	return IncidentResponse{
		IncidentID:     inc.ID,
		DateTime:       inc.DateTime.Format(time.RFC3339),
		LocationID:     inc.LocationID,
		IncidentType:   inc.IncidentType,
		Description:    inc.Description,
		InjurySeverity: inc.InjurySeverity,
		ReporterName:   inc.ReporterName,
		Status:         inc.Status,
		CreatedAt:      inc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      inc.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(incs []SafetyIncident) []IncidentResponse {
	res := make([]IncidentResponse, len(incs))
	for i, inc := range incs {
		res[i] = mapToResponse(inc)
	}
	return res
}
