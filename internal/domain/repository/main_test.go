package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"codejam_core/internal/domain/model"
	"codejam_core/internal/platform/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := postgres.Run(
		ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("codejam"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		panic(err)
	}

	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		_ = container.Terminate(ctx)
		panic(err)
	}
	testDB.SetMaxOpenConns(4)
	testDB.SetConnMaxLifetime(1 * time.Minute)

	if err := waitForDB(testDB, 30*time.Second); err != nil {
		_ = testDB.Close()
		_ = container.Terminate(ctx)
		panic(err)
	}

	if err := database.EnsureSchema(ctx, testDB); err != nil {
		_ = testDB.Close()
		_ = container.Terminate(ctx)
		panic(err)
	}

	code := m.Run()

	_ = testDB.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func waitForDB(db *sql.DB, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if err := db.Ping(); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database not ready after %s", timeout)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func resetDB(t *testing.T) {
	t.Helper()
	if _, err := testDB.Exec(`TRUNCATE solutions, problems, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("reset db: %v", err)
	}
}

func createTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "h4sh"}
	if err := NewPgUserRepository(testDB).Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestProblem(t *testing.T, name string, points int) *model.Problem {
	t.Helper()
	problem := &model.Problem{
		Name:         name,
		Slug:         name,
		Description:  "description of " + name,
		Points:       points,
		TestFileHash: "abc123",
	}
	if err := NewPgProblemRepository(testDB).Create(context.Background(), problem); err != nil {
		t.Fatalf("create problem %s: %v", name, err)
	}
	return problem
}
