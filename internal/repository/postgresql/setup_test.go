package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func testInit(t *testing.T) {
	t.Helper()
	if testDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tables := []string{
		"task_comments",
		"tasks",
		"project_members",
		"projects",
		"leave_requests",
		"attendances",
		"employees",
		"departments",
		"users",
	}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// createTestEmployee provisions a user account plus employee profile.
func createTestEmployee(t *testing.T, ctx context.Context, code string) employee.Employee {
	t.Helper()

	users := postgresql.NewUserRepository(testDB)
	employees := postgresql.NewEmployeeRepository(testDB)

	u, err := users.Create(ctx, user.User{
		Email:        fmt.Sprintf("%s-%d@example.com", code, time.Now().UnixNano()),
		PasswordHash: "not-a-real-hash",
		Role:         user.RoleEmployee,
		IsActive:     true,
	})
	require.NoError(t, err)

	e, err := employees.Create(ctx, employee.Employee{
		UserID:        u.ID,
		EmployeeCode:  code,
		FirstName:     "Test",
		LastName:      code,
		DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return e
}

// actorContext builds a request context carrying the claims the services read.
func actorContext(t *testing.T, ctx context.Context, employeeID string, role user.Role) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("postgresql-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "test-user",
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(ctx, token, nil)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
