package ppe

import (
	"context"
	"errors"
	"time"

	ppeerrors "safety-api/internal/ppe/errors"
	"safety-api/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	defaultStatus   = "Pending"
	unknownEmployee = "Unknown"
)

//go:generate mockgen -source=ppe_service.go -destination=mock/ppe_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePPEComplianceRequest) (PPEComplianceResponse, error)
	List(ctx context.Context, skip, limit int) ([]PPEComplianceResponse, error)
	GetByID(ctx context.Context, id int) (PPEComplianceResponse, error)
	Update(ctx context.Context, id int, req UpdatePPEComplianceRequest) (PPEComplianceResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ppe.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ppe.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePPEComplianceRequest) (PPEComplianceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create ppe compliance requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
	)

	var assessedOn *time.Time
	if req.AssessmentDate != nil && *req.AssessmentDate != "" {
		d, err := time.Parse(dateLayout, *req.AssessmentDate)
		if err != nil {
			s.logger.Warn("create ppe compliance invalid assessment_date",
				zap.String("assessment_date", *req.AssessmentDate),
				zap.Error(err),
			)
			return PPEComplianceResponse{}, ppeerrors.ErrInvalidAssessmentDate
		}
		assessedOn = &d
	}

	violations := 0
	if req.Violations != nil {
		violations = *req.Violations
	}

	status := defaultStatus
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	rec := &PPECompliance{
		EmployeeID:              req.EmployeeID,
		AssessmentDate:          assessedOn,
		HelmetCompliance:        req.HelmetCompliance,
		SafetyGlassesCompliance: req.SafetyGlassesCompliance,
		GlovesCompliance:        req.GlovesCompliance,
		SafetyShoesCompliance:   req.SafetyShoesCompliance,
		VestCompliance:          req.VestCompliance,
		Violations:              violations,
		Status:                  status,
		AssessorName:            req.AssessorName,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create ppe compliance begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return PPEComplianceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create ppe compliance persist failed", zap.Error(err))
		return PPEComplianceResponse{}, mapWriteError(err, "creating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create ppe compliance commit failed", zap.String("request_id", rid), zap.Error(err))
		return PPEComplianceResponse{}, err
	}

	s.logger.Info("create ppe compliance success",
		zap.String("request_id", rid),
		zap.Int("ppe_id", rec.ID),
	)

	return s.toResponse(ctx, *rec), nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]PPEComplianceResponse, error) {
	s.logger.Debug("list ppe compliance requested", zap.Int("skip", skip), zap.Int("limit", limit))

	recs, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list ppe compliance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]PPEComplianceResponse, len(recs))
	for i, rec := range recs {
		res[i] = s.toResponse(ctx, rec)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int) (PPEComplianceResponse, error) {
	s.logger.Debug("get ppe compliance by id requested", zap.Int("ppe_id", id))

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PPEComplianceResponse{}, mapRepositoryError(err)
	}

	return s.toResponse(ctx, *rec), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdatePPEComplianceRequest) (PPEComplianceResponse, error) {
	s.logger.Debug("update ppe compliance requested", zap.Int("ppe_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update ppe compliance begin tx failed", zap.Error(tx.Error))
		return PPEComplianceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PPEComplianceResponse{}, mapRepositoryError(err)
	}

	if req.EmployeeID != nil {
		rec.EmployeeID = *req.EmployeeID
	}
	// Optional fields apply only when their key was present; a present
	// null clears the column.
	if req.AssessmentDate.Set {
		if req.AssessmentDate.Val == nil {
			rec.AssessmentDate = nil
		} else {
			d, err := time.Parse(dateLayout, *req.AssessmentDate.Val)
			if err != nil {
				s.logger.Warn("update ppe compliance invalid assessment_date",
					zap.String("assessment_date", *req.AssessmentDate.Val),
					zap.Error(err),
				)
				return PPEComplianceResponse{}, ppeerrors.ErrInvalidAssessmentDate
			}
			rec.AssessmentDate = &d
		}
	}
	if req.HelmetCompliance.Set {
		rec.HelmetCompliance = req.HelmetCompliance.Val
	}
	if req.SafetyGlassesCompliance.Set {
		rec.SafetyGlassesCompliance = req.SafetyGlassesCompliance.Val
	}
	if req.GlovesCompliance.Set {
		rec.GlovesCompliance = req.GlovesCompliance.Val
	}
	if req.SafetyShoesCompliance.Set {
		rec.SafetyShoesCompliance = req.SafetyShoesCompliance.Val
	}
	if req.VestCompliance.Set {
		rec.VestCompliance = req.VestCompliance.Val
	}
	if req.Violations != nil {
		rec.Violations = *req.Violations
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.AssessorName.Set {
		rec.AssessorName = req.AssessorName.Val
	}

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("update ppe compliance persist failed", zap.Error(err))
		return PPEComplianceResponse{}, mapWriteError(err, "updating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update ppe compliance commit failed", zap.Error(err))
		return PPEComplianceResponse{}, err
	}

	s.logger.Info("update ppe compliance success", zap.Int("ppe_id", id))

	return s.toResponse(ctx, *rec), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete ppe compliance requested", zap.Int("ppe_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete ppe compliance begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete ppe compliance failed", zap.Error(err))
		return mapWriteError(err, "deleting")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete ppe compliance commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete ppe compliance success", zap.Int("ppe_id", id))
	return nil
}

// toResponse composes the denormalized employee fields. A missing or
// deleted employee row degrades to "Unknown" instead of failing the read;
// an existing employee without a department keeps a null department.
func (s *service) toResponse(ctx context.Context, rec PPECompliance) PPEComplianceResponse {
	employee := unknownEmployee
	unknown := unknownEmployee
	department := &unknown

	ref, err := s.repo.FindEmployeeRef(ctx, rec.EmployeeID)
	switch {
	case err == nil:
		employee = displayName(ref)
		department = ref.Department
	case errors.Is(err, gorm.ErrRecordNotFound):
		// keep the fallbacks
	default:
		s.logger.Warn("resolve employee for ppe compliance failed",
			zap.Int("employee_id", rec.EmployeeID),
			zap.Error(err),
		)
	}

	var assessedOn *string
	if rec.AssessmentDate != nil {
		d := rec.AssessmentDate.Format(dateLayout)
		assessedOn = &d
	}

	return PPEComplianceResponse{
		PPEID:                   rec.ID,
		Employee:                employee,
		Department:              department,
		AssessmentDate:          assessedOn,
		HelmetCompliance:        rec.HelmetCompliance,
		SafetyGlassesCompliance: rec.SafetyGlassesCompliance,
		GlovesCompliance:        rec.GlovesCompliance,
		SafetyShoesCompliance:   rec.SafetyShoesCompliance,
		VestCompliance:          rec.VestCompliance,
		Violations:              rec.Violations,
		Status:                  rec.Status,
		Assessor:                rec.AssessorName,
	}
}

func displayName(ref *EmployeeRef) string {
	if ref.FirstName != nil && *ref.FirstName != "" && ref.LastName != nil && *ref.LastName != "" {
		return *ref.FirstName + " " + *ref.LastName
	}
	if ref.EmployeeName != "" {
		return ref.EmployeeName
	}
	return unknownEmployee
}
