package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	records       attendance.Repository
	staff         staff.Repository
	lateThreshold attendance.TimeOfDay
	dedupWindow   time.Duration
	logger        *slog.Logger
}

func NewAttendanceService(
	records attendance.Repository,
	staffRepo staff.Repository,
	lateThreshold attendance.TimeOfDay,
	dedupWindow time.Duration,
	logger *slog.Logger,
) attendance.Service {
	return &AttendanceServiceImpl{
		records:       records,
		staff:         staffRepo,
		lateThreshold: lateThreshold,
		dedupWindow:   dedupWindow,
		logger:        logger,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02T15:04:05")
	return &format
}

func withinWindow(a, b time.Time, window time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= window
}

func (a *AttendanceServiceImpl) toResponse(rec attendance.Record, profile *staff.Profile) (attendance.RecordResponse, error) {
	derived, err := attendance.Derive(&rec, a.lateThreshold)
	if err != nil {
		a.logger.Error("inconsistent attendance record",
			slog.String("record_id", rec.ID),
			slog.Int64("staff_id", rec.StaffID),
		)
		return attendance.RecordResponse{}, err
	}

	resp := attendance.RecordResponse{
		ID:             rec.ID,
		StaffID:        rec.StaffID,
		AttendanceDate: rec.Date.Format("2006-01-02"),
		ArrivalTime:    timePtrToString(rec.ArrivalAt),
		DepartureTime:  timePtrToString(rec.DepartureAt),
		Status:         derived.Status,
		IsLate:         derived.IsLate,
		HoursWorked:    derived.HoursWorked,
	}
	if profile != nil {
		resp.StaffName = profile.FullName()
		resp.DepartmentID = profile.DepartmentID
		resp.DepartmentName = profile.DepartmentName
	}
	return resp, nil
}

// Record implements attendance.Service. The event timestamp lands as the
// arrival when the day has no record and as the departure when an arrival is
// already stored. Resubmissions inside the dedup window return the current
// state unchanged; a third distinct event on a completed day is rejected.
func (a *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	profile, err := a.staff.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staff.ErrProfileNotFound) {
			return attendance.RecordResponse{}, attendance.ErrStaffNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve staff: %w", err)
	}
	if !profile.Active {
		return attendance.RecordResponse{}, attendance.ErrStaffInactive
	}

	eventAt := req.Timestamp()
	transition := attendance.StatusNoRecord

	rec, err := a.records.Mutate(ctx, req.StaffID, req.Date(), func(existing *attendance.Record) (attendance.Record, error) {
		switch {
		case existing == nil || existing.ArrivalAt == nil:
			transition = attendance.StatusArrivalRecorded
			return attendance.Record{ArrivalAt: &eventAt}, nil

		case existing.DepartureAt == nil:
			if withinWindow(eventAt, *existing.ArrivalAt, a.dedupWindow) {
				transition = attendance.StatusArrivalRecorded
				return *existing, nil
			}
			if eventAt.Before(*existing.ArrivalAt) {
				return attendance.Record{}, validator.ValidationErrors{{
					Field:   "attendanceTime",
					Message: "attendanceTime is earlier than the recorded arrival",
				}}
			}
			transition = attendance.StatusDepartureRecorded
			updated := *existing
			updated.DepartureAt = &eventAt
			return updated, nil

		default:
			if withinWindow(eventAt, *existing.DepartureAt, a.dedupWindow) {
				transition = attendance.StatusComplete
				return *existing, nil
			}
			return attendance.Record{}, attendance.ErrDayComplete
		}
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	resp, err := a.toResponse(rec, &profile)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	// Queries derive COMPLETE from a both-set record; the recording answer
	// reports the transition that just happened instead.
	if transition == attendance.StatusDepartureRecorded {
		resp.Status = attendance.StatusDepartureRecorded
	}

	a.logger.Info("attendance event recorded",
		slog.Int64("staff_id", req.StaffID),
		slog.String("date", resp.AttendanceDate),
		slog.String("status", string(resp.Status)),
	)
	return resp, nil
}

// GetRecord implements attendance.Service.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := a.records.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	profile, err := a.staff.GetByID(ctx, rec.StaffID)
	if err != nil {
		if !errors.Is(err, staff.ErrProfileNotFound) {
			return attendance.RecordResponse{}, fmt.Errorf("failed to resolve staff: %w", err)
		}
		return a.toResponse(rec, nil)
	}
	return a.toResponse(rec, &profile)
}

func (a *AttendanceServiceImpl) profileIndex(ctx context.Context) (map[int64]staff.Profile, error) {
	profiles, err := a.staff.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	index := make(map[int64]staff.Profile, len(profiles))
	for _, p := range profiles {
		index[p.ID] = p
	}
	return index, nil
}

func (a *AttendanceServiceImpl) toResponses(records []attendance.Record, index map[int64]staff.Profile) ([]attendance.RecordResponse, error) {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		var profile *staff.Profile
		if p, ok := index[rec.StaffID]; ok {
			profile = &p
		}
		resp, err := a.toResponse(rec, profile)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// ListAll implements attendance.Service.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := a.records.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	index, err := a.profileIndex(ctx)
	if err != nil {
		return nil, err
	}
	return a.toResponses(records, index)
}

// ListByDate implements attendance.Service.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	records, err := a.records.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	index, err := a.profileIndex(ctx)
	if err != nil {
		return nil, err
	}
	return a.toResponses(records, index)
}

// ListByStaff implements attendance.Service.
func (a *AttendanceServiceImpl) ListByStaff(ctx context.Context, staffID int64) ([]attendance.RecordResponse, error) {
	profile, err := a.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrProfileNotFound) {
			return nil, attendance.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to resolve staff: %w", err)
	}

	records, err := a.records.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return a.toResponses(records, map[int64]staff.Profile{profile.ID: profile})
}

// GetByStaffAndDate implements attendance.Service.
func (a *AttendanceServiceImpl) GetByStaffAndDate(ctx context.Context, staffID int64, date string) (attendance.RecordResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.RecordResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	profile, err := a.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrProfileNotFound) {
			return attendance.RecordResponse{}, attendance.ErrStaffNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve staff: %w", err)
	}

	rec, err := a.records.Find(ctx, staffID, day)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}
	return a.toResponse(*rec, &profile)
}

// ListByDepartment implements attendance.Service.
func (a *AttendanceServiceImpl) ListByDepartment(ctx context.Context, departmentID int64) ([]attendance.RecordResponse, error) {
	profiles, err := a.staff.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff by department: %w", err)
	}

	index := make(map[int64]staff.Profile, len(profiles))
	ids := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		index[p.ID] = p
		ids = append(ids, p.ID)
	}

	records, err := a.records.ListByStaffIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return a.toResponses(records, index)
}

// ListByRange implements attendance.Service.
func (a *AttendanceServiceImpl) ListByRange(ctx context.Context, startDate, endDate string) ([]attendance.RecordResponse, error) {
	start, okStart := validator.IsValidDate(startDate)
	end, okEnd := validator.IsValidDate(endDate)
	if !okStart || !okEnd {
		return nil, validator.ValidationErrors{{
			Field:   "start_date",
			Message: "start_date and end_date must be in YYYY-MM-DD format",
		}}
	}
	if end.Before(start) {
		return nil, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be earlier than start_date",
		}}
	}

	records, err := a.records.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	index, err := a.profileIndex(ctx)
	if err != nil {
		return nil, err
	}
	return a.toResponses(records, index)
}
