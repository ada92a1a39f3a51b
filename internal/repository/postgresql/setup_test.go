package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/database"
)

// TestDatabaseSetup wires the integration tests to a disposable database.
// Tests skip themselves when TEST_DATABASE_URL is unset.
type TestDatabaseSetup struct {
	DB *database.DB
}

func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables clears every table between test cases.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"attendance_records",
		"staff",
		"departments",
	}
	for _, table := range tables {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

// SeedStaff inserts a department and one active staff member.
func (t *TestDatabaseSetup) SeedStaff(ctx context.Context, staffID int64, name, department string) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var departmentID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO departments (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, department).Scan(&departmentID)
	if err != nil {
		return fmt.Errorf("seed department: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO staff (id, name, surname, email, active, department_id)
		 VALUES ($1, $2, '', $3, true, $4)
		 ON CONFLICT (id) DO NOTHING`,
		staffID, name, fmt.Sprintf("%s@example.test", name), departmentID)
	if err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}
	return tx.Commit(ctx)
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Pool.Close()
}
