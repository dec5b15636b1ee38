package inspection

import (
	"context"
	"errors"
	"testing"

	inspectionerrors "safety-api/internal/inspection/errors"
	"safety-api/internal/location"
	"safety-api/internal/shared/apperror"
	"safety-api/internal/shared/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&location.Location{}, &SafetyInspection{}))
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	db := newTestDB(t)
	return NewService(db, NewRepository(db)), db
}

// newEnforcingTestDB turns foreign key enforcement on, which sqlite leaves
// off by default, so referential integrity can be exercised.
func newEnforcingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&location.Location{}, &SafetyInspection{}))
	return db
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestService_Create_ResolvesArea(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&location.Location{Name: "Main Factory Floor"}).Error)

	created, err := svc.Create(ctx, CreateInspectionRequest{
		InspectionType: "Monthly Safety Check",
		InspectionDate: "2025-09-15",
		LocationID:     1,
		InspectorName:  strPtr("Safety Inspector Jane"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.InspectionID)
	assert.Equal(t, "Main Factory Floor", created.Area)
	assert.Equal(t, "Scheduled", created.Status)
	assert.Equal(t, "2025-09-15", created.ScheduledDate)
	assert.Nil(t, created.CompletedDate)
	assert.Equal(t, []string{}, created.Findings)
}

func TestService_Create_UnknownArea(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), CreateInspectionRequest{
		InspectionType: "Fire Safety Inspection",
		InspectionDate: "2025-09-01",
		LocationID:     42,
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", created.Area)
}

func TestService_Create_UnknownLocationRejected(t *testing.T) {
	db := newEnforcingTestDB(t)
	svc := NewService(db, NewRepository(db))

	_, err := svc.Create(context.Background(), CreateInspectionRequest{
		InspectionType: "Fire Safety Inspection",
		InspectionDate: "2025-09-01",
		LocationID:     999999,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
	assert.Equal(t, "Referenced location does not exist", appErr.Message)
}

func TestService_Create_CompletedDate(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), CreateInspectionRequest{
		InspectionType: "Fire Safety Inspection",
		InspectionDate: "2025-09-01",
		LocationID:     1,
		Status:         strPtr("Completed"),
		Score:          intPtr(92),
	})
	require.NoError(t, err)
	require.NotNil(t, created.CompletedDate)
	assert.Equal(t, "2025-09-01", *created.CompletedDate)
	require.NotNil(t, created.Score)
	assert.Equal(t, 92, *created.Score)
}

func TestService_Create_InvalidDateAndTime(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInspectionRequest{
		InspectionType: "Monthly Safety Check",
		InspectionDate: "15/09/2025",
		LocationID:     1,
	})
	assert.True(t, errors.Is(err, inspectionerrors.ErrInvalidInspectionDate))

	_, err = svc.Create(ctx, CreateInspectionRequest{
		InspectionType: "Monthly Safety Check",
		InspectionDate: "2025-09-15",
		InspectionTime: strPtr("9am"),
		LocationID:     1,
	})
	assert.True(t, errors.Is(err, inspectionerrors.ErrInvalidInspectionTime))
}

func TestService_Update_StatusDrivesCompletedDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInspectionRequest{
		InspectionType: "Equipment Safety Check",
		InspectionDate: "2025-08-30",
		LocationID:     1,
	})
	require.NoError(t, err)
	assert.Nil(t, created.CompletedDate)

	updated, err := svc.Update(ctx, created.InspectionID, UpdateInspectionRequest{
		Status: strPtr("Completed"),
		Score:  optional.Of(88),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedDate)
	assert.Equal(t, "2025-08-30", *updated.CompletedDate)
	assert.Equal(t, "Equipment Safety Check", updated.Type)
}

func TestService_Update_NullClearsScore(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInspectionRequest{
		InspectionType: "Equipment Safety Check",
		InspectionDate: "2025-08-30",
		LocationID:     1,
		Score:          intPtr(75),
		Notes:          strPtr("Guard rail loose on line 2"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Score)

	updated, err := svc.Update(ctx, created.InspectionID, UpdateInspectionRequest{
		Score: optional.Null[int](),
		Notes: optional.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Score)
	assert.Nil(t, updated.Notes)

	got, err := svc.GetByID(ctx, created.InspectionID)
	require.NoError(t, err)
	assert.Nil(t, got.Score)
	assert.Nil(t, got.Notes)
}

func TestService_DeleteThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInspectionRequest{
		InspectionType: "Monthly Safety Check",
		InspectionDate: "2025-09-15",
		LocationID:     1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.InspectionID))

	_, err = svc.GetByID(ctx, created.InspectionID)
	assert.True(t, errors.Is(err, inspectionerrors.ErrInspectionNotFound))
}
