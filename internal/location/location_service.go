package location

import (
	"context"

	"safety-api/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	List(ctx context.Context, skip, limit int) ([]LocationResponse, error)
	GetByID(ctx context.Context, id int) (LocationResponse, error)
	Update(ctx context.Context, id int, req UpdateLocationRequest) (LocationResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("location.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create location requested",
		zap.String("request_id", rid),
		zap.String("location_name", req.Name),
	)

	loc := &Location{Name: req.Name}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create location begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return LocationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, loc); err != nil {
		s.logger.Error("create location persist failed", zap.Error(err))
		return LocationResponse{}, mapWriteError(err, "creating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create location commit failed", zap.String("request_id", rid), zap.Error(err))
		return LocationResponse{}, err
	}

	s.logger.Info("create location success",
		zap.String("request_id", rid),
		zap.Int("location_id", loc.ID),
	)

	return mapToResponse(*loc), nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]LocationResponse, error) {
	s.logger.Debug("list locations requested", zap.Int("skip", skip), zap.Int("limit", limit))

	locs, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list locations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(locs), nil
}

func (s *service) GetByID(ctx context.Context, id int) (LocationResponse, error) {
	s.logger.Debug("get location by id requested", zap.Int("location_id", id))

	loc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LocationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*loc), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateLocationRequest) (LocationResponse, error) {
	s.logger.Debug("update location requested", zap.Int("location_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update location begin tx failed", zap.Error(tx.Error))
		return LocationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	loc, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LocationResponse{}, mapRepositoryError(err)
	}

	// Only fields present in the request are applied.
	if req.Name != nil {
		loc.Name = *req.Name
	}

	if err := qtx.Update(ctx, loc); err != nil {
		s.logger.Error("update location persist failed", zap.Error(err))
		return LocationResponse{}, mapWriteError(err, "updating")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update location commit failed", zap.Error(err))
		return LocationResponse{}, err
	}

	s.logger.Info("update location success", zap.Int("location_id", id))

	return mapToResponse(*loc), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete location requested", zap.Int("location_id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete location begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete location failed", zap.Error(err))
		return mapWriteError(err, "deleting")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete location commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete location success", zap.Int("location_id", id))
	return nil
}

func mapToResponse(loc Location) LocationResponse {
	return LocationResponse{
		LocationID: loc.ID,
		Name:       loc.Name,
	}
}

func mapToListResponse(locs []Location) []LocationResponse {
	res := make([]LocationResponse, len(locs))
	for i, l := range locs {
		res[i] = mapToResponse(l)
	}
	return res
}
