package employee

import (
	"context"
	"errors"
	"testing"

	employeeerrors "safety-api/internal/employee/errors"
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

	require.NoError(t, db.AutoMigrate(&Employee{}))
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

	created, err := svc.Create(ctx, CreateEmployeeRequest{
		EmployeeName: "John Smith",
		EmployeeCode: "EMP001",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.EmployeeID)
	assert.Equal(t, "John Smith", created.Name)
	assert.Equal(t, "EMP001", created.EmployeeCode)

	got, err := svc.GetByID(ctx, created.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_Create_ComposedName(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmployeeName: "S. Johnson",
		EmployeeCode: "EMP002",
		FirstName:    strPtr("Sarah"),
		LastName:     strPtr("Johnson"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", created.Name)
	assert.Equal(t, "S. Johnson", created.EmployeeName)
}

func TestService_Create_DuplicateCode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEmployeeRequest{
		EmployeeName: "John Smith",
		EmployeeCode: "EMP001",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateEmployeeRequest{
		EmployeeName: "Jane Doe",
		EmployeeCode: "EMP001",
	})
	assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeCodeExists))
}

func TestService_Update_Partial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateEmployeeRequest{
		EmployeeName: "Mike Wilson",
		EmployeeCode: "EMP003",
		Department:   strPtr("Operations"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.EmployeeID, UpdateEmployeeRequest{
		Department: optional.Of("Maintenance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mike Wilson", updated.EmployeeName)
	assert.Equal(t, "EMP003", updated.EmployeeCode)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Maintenance", *updated.Department)
}

func TestService_Update_NullClearsDepartment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateEmployeeRequest{
		EmployeeName: "Lisa Chen",
		EmployeeCode: "EMP004",
		Department:   strPtr("Quality Control"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Department)

	updated, err := svc.Update(ctx, created.EmployeeID, UpdateEmployeeRequest{
		Department: optional.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Department)

	got, err := svc.GetByID(ctx, created.EmployeeID)
	require.NoError(t, err)
	assert.Nil(t, got.Department)
}

func TestService_DeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateEmployeeRequest{
		EmployeeName: "John Smith",
		EmployeeCode: "EMP001",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.EmployeeID))

	_, err = svc.GetByID(ctx, created.EmployeeID)
	assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeNotFound))
}

func TestService_List_SkipLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	codes := []string{"EMP001", "EMP002", "EMP003"}
	for _, code := range codes {
		_, err := svc.Create(ctx, CreateEmployeeRequest{
			EmployeeName: "Employee " + code,
			EmployeeCode: code,
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "EMP002", page[0].EmployeeCode)
}
