package location

import (
	"context"
	"errors"
	"testing"

	locationerrors "safety-api/internal/location/errors"

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

	require.NoError(t, db.AutoMigrate(&Location{}))
	return db
}

func newTestService(t *testing.T) Service {
	db := newTestDB(t)
	return NewService(db, NewRepository(db))
}

func strPtr(s string) *string { return &s }

func TestService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateLocationRequest{Name: "Main Factory Floor"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.LocationID)
	assert.Equal(t, "Main Factory Floor", created.Name)
	assert.Nil(t, created.Description)

	got, err := svc.GetByID(ctx, created.LocationID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), 999999)
	assert.True(t, errors.Is(err, locationerrors.ErrLocationNotFound))
}

func TestService_Update_Partial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateLocationRequest{Name: "Warehouse"})
	require.NoError(t, err)

	// Empty body changes nothing.
	unchanged, err := svc.Update(ctx, created.LocationID, UpdateLocationRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", unchanged.Name)

	updated, err := svc.Update(ctx, created.LocationID, UpdateLocationRequest{
		Name: strPtr("Warehouse B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse B", updated.Name)

	got, err := svc.GetByID(ctx, created.LocationID)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse B", got.Name)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), 42, UpdateLocationRequest{Name: strPtr("X")})
	assert.True(t, errors.Is(err, locationerrors.ErrLocationNotFound))
}

func TestService_DeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateLocationRequest{Name: "Loading Dock"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.LocationID))

	_, err = svc.GetByID(ctx, created.LocationID)
	assert.True(t, errors.Is(err, locationerrors.ErrLocationNotFound))

	err = svc.Delete(ctx, created.LocationID)
	assert.True(t, errors.Is(err, locationerrors.ErrLocationNotFound))
}

func TestService_List_SkipLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E"}
	for _, name := range names {
		_, err := svc.Create(ctx, CreateLocationRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].Name)
	assert.Equal(t, "C", page[1].Name)

	rest, err := svc.List(ctx, 4, 100)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "E", rest[0].Name)
}
