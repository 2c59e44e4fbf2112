package department

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/department"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDeptDB *database.DB

func deptTestInit(t *testing.T) {
	t.Helper()
	if testDeptDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	var err error
	testDeptDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateDeptTables(t *testing.T, ctx context.Context) {
	_, err := testDeptDB.Exec(ctx, "TRUNCATE TABLE departments CASCADE")
	require.NoError(t, err)
}

func newDeptService() department.DepartmentService {
	return NewDepartmentService(postgresql.NewDepartmentRepository(testDeptDB))
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)
	truncateDeptTables(t, ctx)

	svc := newDeptService()
	name := uniqueName("Engineering")

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: name})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, name, created.Name)
	assert.Equal(t, 0, created.EmployeeCount)
}

func TestDepartmentService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)
	truncateDeptTables(t, ctx)

	svc := newDeptService()
	name := uniqueName("Finance")

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: name})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: name})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDepartmentService_Create_EmptyName(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)

	svc := newDeptService()

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "   "})
	assert.Error(t, err)
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)
	truncateDeptTables(t, ctx)

	svc := newDeptService()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: uniqueName("Sales")})
	require.NoError(t, err)

	newName := uniqueName("Sales-Renamed")
	desc := "Regional sales"
	updated, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{
		ID:          created.ID,
		Name:        &newName,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestDepartmentService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)

	svc := newDeptService()
	name := uniqueName("Ghost")

	_, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{
		ID:   "00000000-0000-0000-0000-000000000000",
		Name: &name,
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)
	truncateDeptTables(t, ctx)

	svc := newDeptService()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: uniqueName("Temp")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))

	list, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	for _, d := range list {
		assert.NotEqual(t, created.ID, d.ID)
	}
}

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	deptTestInit(t)

	err := newDeptService().DeleteDepartment(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
