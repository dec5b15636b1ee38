package incident

import (
	"context"
	"errors"
	"testing"

	incidenterrors "safety-api/internal/incident/errors"
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

	require.NoError(t, db.AutoMigrate(&SafetyIncident{}))
	return db
}

func newTestService(t *testing.T) Service {
	db := newTestDB(t)
	return NewService(db, NewRepository(db))
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
	require.NoError(t, db.AutoMigrate(&location.Location{}, &SafetyIncident{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestService_Create_DefaultStatus(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), CreateIncidentRequest{
		DateTime:     "2025-09-01T08:30:00Z",
		LocationID:   1,
		IncidentType: "Slip and Fall",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.IncidentID)
	assert.Equal(t, "Open", created.Status)
	assert.Equal(t, "2025-09-01T08:30:00Z", created.DateTime)
}

func TestService_Create_TimezonelessDateTime(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), CreateIncidentRequest{
		DateTime:     "2025-09-01T08:30:00",
		LocationID:   1,
		IncidentType: "Near Miss",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.IncidentID)
}

func TestService_Create_InvalidDateTime(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateIncidentRequest{
		DateTime:     "not-a-date",
		LocationID:   1,
		IncidentType: "Slip and Fall",
	})
	assert.True(t, errors.Is(err, incidenterrors.ErrInvalidDateTime))
}

func TestService_Create_UnknownLocationRejected(t *testing.T) {
	db := newEnforcingTestDB(t)
	svc := NewService(db, NewRepository(db))

	_, err := svc.Create(context.Background(), CreateIncidentRequest{
		DateTime:     "2025-09-01T08:30:00Z",
		LocationID:   999999,
		IncidentType: "Slip and Fall",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
	assert.Equal(t, "Referenced location does not exist", appErr.Message)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), 999999)
	assert.True(t, errors.Is(err, incidenterrors.ErrIncidentNotFound))
}

func TestService_Update_Partial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateIncidentRequest{
		DateTime:     "2025-09-01T08:30:00Z",
		LocationID:   1,
		IncidentType: "Slip and Fall",
		Description:  strPtr("Wet floor near entrance"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.IncidentID, UpdateIncidentRequest{
		Status: strPtr("Closed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Closed", updated.Status)
	assert.Equal(t, "Slip and Fall", updated.IncidentType)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Wet floor near entrance", *updated.Description)
	assert.Equal(t, created.DateTime, updated.DateTime)
}

func TestService_Update_NullClearsDescription(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateIncidentRequest{
		DateTime:     "2025-09-01T08:30:00Z",
		LocationID:   1,
		IncidentType: "Slip and Fall",
		Description:  strPtr("Wet floor near entrance"),
		ReporterName: strPtr("John Smith"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.IncidentID, UpdateIncidentRequest{
		Description:  optional.Null[string](),
		ReporterName: optional.Of("Sarah Johnson"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	require.NotNil(t, updated.ReporterName)
	assert.Equal(t, "Sarah Johnson", *updated.ReporterName)

	got, err := svc.GetByID(ctx, created.IncidentID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestService_DeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateIncidentRequest{
		DateTime:     "2025-09-01T08:30:00Z",
		LocationID:   1,
		IncidentType: "Slip and Fall",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.IncidentID))

	_, err = svc.GetByID(ctx, created.IncidentID)
	assert.True(t, errors.Is(err, incidenterrors.ErrIncidentNotFound))
}

func TestService_List_SkipLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.Create(ctx, CreateIncidentRequest{
			DateTime:     "2025-09-01T08:30:00Z",
			LocationID:   1,
			IncidentType: "Near Miss",
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].IncidentID)
	assert.Equal(t, 4, page[1].IncidentID)
}
