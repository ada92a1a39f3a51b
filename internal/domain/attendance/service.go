package attendance

import (
	"context"
)

// Service defines the recording protocol and the record queries.
type Service interface {
	// Record interprets a verified check-in event as an arrival or a
	// departure for the staff member's record on the given date. Submitting
	// the same event again within the dedup window is a no-op, not an error;
	// a third event on a completed day fails with ErrDayComplete.
	Record(ctx context.Context, req RecordRequest) (RecordResponse, error)

	// GetRecord retrieves a single record by ID.
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// ListAll retrieves every record.
	ListAll(ctx context.Context) ([]RecordResponse, error)

	// ListByDate retrieves records for a calendar date (YYYY-MM-DD).
	ListByDate(ctx context.Context, date string) ([]RecordResponse, error)

	// ListByStaff retrieves all records of one staff member.
	ListByStaff(ctx context.Context, staffID int64) ([]RecordResponse, error)

	// GetByStaffAndDate retrieves the record of one staff member on one date.
	GetByStaffAndDate(ctx context.Context, staffID int64, date string) (RecordResponse, error)

	// ListByDepartment retrieves records of every staff member in a department.
	ListByDepartment(ctx context.Context, departmentID int64) ([]RecordResponse, error)

	// ListByRange retrieves records with dates in [startDate, endDate].
	ListByRange(ctx context.Context, startDate, endDate string) ([]RecordResponse, error)
}
