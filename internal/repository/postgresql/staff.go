package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/database"
)

const staffColumns = `s.id, s.name, s.surname, s.email, s.active, s.department_id, d.name`

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepository{db: db}
}

func scanProfile(row pgx.Row) (staff.Profile, error) {
	var p staff.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Email, &p.Active, &p.DepartmentID, &p.DepartmentName)
	if err != nil {
		return staff.Profile{}, err
	}
	return p, nil
}

func collectProfiles(rows pgx.Rows) ([]staff.Profile, error) {
	defer rows.Close()

	profiles := make([]staff.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff profiles: %w", err)
	}
	return profiles, nil
}

// GetByID implements staff.Repository.
func (r *staffRepository) GetByID(ctx context.Context, id int64) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Profile{}, staff.ErrProfileNotFound
		}
		return staff.Profile{}, fmt.Errorf("failed to get staff profile: %w", err)
	}
	return p, nil
}

// ListActive implements staff.Repository.
func (r *staffRepository) ListActive(ctx context.Context) ([]staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		JOIN departments d ON d.id = s.department_id
		WHERE s.active
		ORDER BY s.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	return collectProfiles(rows)
}

// ListAll implements staff.Repository.
func (r *staffRepository) ListAll(ctx context.Context) ([]staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		JOIN departments d ON d.id = s.department_id
		ORDER BY s.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return collectProfiles(rows)
}

// ListByDepartment implements staff.Repository.
func (r *staffRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		JOIN departments d ON d.id = s.department_id
		WHERE s.department_id = $1
		ORDER BY s.id
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff by department: %w", err)
	}
	return collectProfiles(rows)
}

// ListDepartments implements staff.Repository.
func (r *staffRepository) ListDepartments(ctx context.Context) ([]staff.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name
		FROM departments
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]staff.Department, 0)
	for rows.Next() {
		var d staff.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return departments, nil
}
