package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
)

type recordKey struct {
	staffID int64
	date    string // YYYY-MM-DD
}

// attendanceRepository is an in-memory attendance.Repository. It backs unit
// tests and the memory store driver. Mutate serializes writers per
// (staffID, date) with a one-slot lock channel so two concurrent events for
// the same staff member can never both observe "no record".
type attendanceRepository struct {
	mu          sync.RWMutex
	records     map[recordKey]attendance.Record
	order       []recordKey // insertion order, for stable listings
	locks       map[recordKey]chan struct{}
	lockTimeout time.Duration
}

func NewAttendanceRepository(lockTimeout time.Duration) attendance.Repository {
	return &attendanceRepository{
		records:     make(map[recordKey]attendance.Record),
		locks:       make(map[recordKey]chan struct{}),
		lockTimeout: lockTimeout,
	}
}

func keyOf(staffID int64, date time.Time) recordKey {
	return recordKey{staffID: staffID, date: date.Format("2006-01-02")}
}

func (r *attendanceRepository) lockFor(key recordKey) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = make(chan struct{}, 1)
		r.locks[key] = l
	}
	return l
}

// Find implements attendance.Repository.
func (r *attendanceRepository) Find(ctx context.Context, staffID int64, date time.Time) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[keyOf(staffID, date)]
	if !ok {
		return nil, nil
	}
	copied := rec
	return &copied, nil
}

// Mutate implements attendance.Repository.
func (r *attendanceRepository) Mutate(ctx context.Context, staffID int64, date time.Time, fn func(existing *attendance.Record) (attendance.Record, error)) (attendance.Record, error) {
	key := keyOf(staffID, date)
	lock := r.lockFor(key)

	timer := time.NewTimer(r.lockTimeout)
	defer timer.Stop()

	select {
	case lock <- struct{}{}:
		defer func() { <-lock }()
	case <-timer.C:
		return attendance.Record{}, attendance.ErrLockTimeout
	case <-ctx.Done():
		return attendance.Record{}, ctx.Err()
	}

	existing, err := r.Find(ctx, staffID, date)
	if err != nil {
		return attendance.Record{}, err
	}

	updated, err := fn(existing)
	if err != nil {
		return attendance.Record{}, err
	}

	now := time.Now().UTC()
	if updated.ID == "" {
		updated.ID = uuid.NewString()
		updated.CreatedAt = now
	}
	updated.UpdatedAt = now
	updated.StaffID = staffID
	updated.Date = attendance.DateOf(date)

	r.mu.Lock()
	if _, ok := r.records[key]; !ok {
		r.order = append(r.order, key)
	}
	r.records[key] = updated
	r.mu.Unlock()

	return updated, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.order {
		if rec := r.records[key]; rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *attendanceRepository) snapshot(match func(attendance.Record) bool) []attendance.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Record, 0)
	for _, key := range r.order {
		rec := r.records[key]
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// ListAll implements attendance.Repository.
func (r *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	records := r.snapshot(func(attendance.Record) bool { return true })
	sortByDateThenStaff(records)
	return records, nil
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	day := attendance.DateOf(date)
	return r.snapshot(func(rec attendance.Record) bool { return rec.Date.Equal(day) }), nil
}

// ListByStaff implements attendance.Repository.
func (r *attendanceRepository) ListByStaff(ctx context.Context, staffID int64) ([]attendance.Record, error) {
	records := r.snapshot(func(rec attendance.Record) bool { return rec.StaffID == staffID })
	sortByDateThenStaff(records)
	return records, nil
}

// ListByStaffIDs implements attendance.Repository.
func (r *attendanceRepository) ListByStaffIDs(ctx context.Context, staffIDs []int64) ([]attendance.Record, error) {
	wanted := make(map[int64]struct{}, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = struct{}{}
	}
	records := r.snapshot(func(rec attendance.Record) bool {
		_, ok := wanted[rec.StaffID]
		return ok
	})
	sortByDateThenStaff(records)
	return records, nil
}

// ListByRange implements attendance.Repository.
func (r *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	from, to := attendance.DateOf(start), attendance.DateOf(end)
	records := r.snapshot(func(rec attendance.Record) bool {
		return !rec.Date.Before(from) && !rec.Date.After(to)
	})
	sortByDateThenStaff(records)
	return records, nil
}

func sortByDateThenStaff(records []attendance.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].StaffID < records[j].StaffID
	})
}
