package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/database"
)

const attendanceColumns = `id, staff_id, date, arrival_at, departure_at, created_at, updated_at`

type attendanceRepository struct {
	db          *database.DB
	lockTimeout time.Duration
}

func NewAttendanceRepository(db *database.DB, lockTimeout time.Duration) attendance.Repository {
	return &attendanceRepository{db: db, lockTimeout: lockTimeout}
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.Date, &rec.ArrivalAt, &rec.DepartureAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.Date = attendance.DateOf(rec.Date)
	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance records: %w", err)
	}
	return records, nil
}

// Find implements attendance.Repository.
func (r *attendanceRepository) Find(ctx context.Context, staffID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = $1 AND date = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, staffID, attendance.DateOf(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return &rec, nil
}

// Mutate implements attendance.Repository. The row for (staffID, date) is
// locked with SELECT ... FOR UPDATE inside a transaction, so fn observes a
// stable record and concurrent writers for the same staff and day queue up.
// lock_timeout bounds the wait; SQLSTATE 55P03 maps to ErrLockTimeout.
func (r *attendanceRepository) Mutate(ctx context.Context, staffID int64, date time.Time, fn func(existing *attendance.Record) (attendance.Record, error)) (attendance.Record, error) {
	var result attendance.Record
	day := attendance.DateOf(date)

	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		timeoutMs := r.lockTimeout.Milliseconds()
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeoutMs)); err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}

		query := `
			SELECT ` + attendanceColumns + `
			FROM attendance_records
			WHERE staff_id = $1 AND date = $2
			FOR UPDATE
		`

		var existing *attendance.Record
		rec, err := scanRecord(tx.QueryRow(ctx, query, staffID, day))
		switch {
		case err == nil:
			existing = &rec
		case errors.Is(err, pgx.ErrNoRows):
			existing = nil
		default:
			return fmt.Errorf("failed to lock attendance record: %w", err)
		}

		updated, err := fn(existing)
		if err != nil {
			return err
		}

		if existing == nil {
			insert := `
				INSERT INTO attendance_records (staff_id, date, arrival_at, departure_at)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (staff_id, date) DO NOTHING
				RETURNING ` + attendanceColumns + `
			`
			result, err = scanRecord(tx.QueryRow(ctx, insert, staffID, day, updated.ArrivalAt, updated.DepartureAt))
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return attendance.ErrLockTimeout
				}
				return fmt.Errorf("failed to create attendance record: %w", err)
			}
			return nil
		}

		update := `
			UPDATE attendance_records
			SET arrival_at = $1, departure_at = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING ` + attendanceColumns + `
		`
		result, err = scanRecord(tx.QueryRow(ctx, update, updated.ArrivalAt, updated.DepartureAt, existing.ID))
		if err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
			return attendance.Record{}, attendance.ErrLockTimeout
		}
		return attendance.Record{}, err
	}
	return result, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// ListAll implements attendance.Repository.
func (r *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		ORDER BY date, staff_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return collectRecords(rows)
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date = $1
		ORDER BY staff_id
	`

	rows, err := q.Query(ctx, query, attendance.DateOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by date: %w", err)
	}
	return collectRecords(rows)
}

// ListByStaff implements attendance.Repository.
func (r *attendanceRepository) ListByStaff(ctx context.Context, staffID int64) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by staff: %w", err)
	}
	return collectRecords(rows)
}

// ListByStaffIDs implements attendance.Repository.
func (r *attendanceRepository) ListByStaffIDs(ctx context.Context, staffIDs []int64) ([]attendance.Record, error) {
	if len(staffIDs) == 0 {
		return []attendance.Record{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = ANY($1)
		ORDER BY date, staff_id
	`

	rows, err := q.Query(ctx, query, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by staff ids: %w", err)
	}
	return collectRecords(rows)
}

// ListByRange implements attendance.Repository.
func (r *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, staff_id
	`

	rows, err := q.Query(ctx, query, attendance.DateOf(start), attendance.DateOf(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by range: %w", err)
	}
	return collectRecords(rows)
}
