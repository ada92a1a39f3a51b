package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. One record exists
// per (staffID, date); records are never deleted.
type Repository interface {
	// Find returns the record for staffID on date, or nil when none exists.
	Find(ctx context.Context, staffID int64, date time.Time) (*Record, error)

	// Mutate runs fn under the per-(staffID, date) write lock and persists
	// the record fn returns. fn receives the current record, nil when none
	// exists yet. Two concurrent events for the same staff and date are
	// serialized here; if the lock cannot be taken in time, Mutate fails
	// with ErrLockTimeout and fn is never called.
	Mutate(ctx context.Context, staffID int64, date time.Time, fn func(existing *Record) (Record, error)) (Record, error)

	// GetByID retrieves a single record.
	GetByID(ctx context.Context, id string) (Record, error)

	// Listing queries read point-in-time snapshots; they never block writers.
	ListAll(ctx context.Context) ([]Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Record, error)
	ListByStaffIDs(ctx context.Context, staffIDs []int64) ([]Record, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
