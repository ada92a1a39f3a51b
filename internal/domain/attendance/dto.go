package attendance

import (
	"time"

	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/validator"
)

// RecordRequest is a biometric-verified check-in event. The caller has
// already matched the fingerprint; this engine only trusts the assertion and
// interprets the event as an arrival or a departure.
type RecordRequest struct {
	StaffID        int64  `json:"staffId"`
	AttendanceDate string `json:"attendanceDate"` // YYYY-MM-DD
	AttendanceTime string `json:"attendanceTime"` // YYYY-MM-DDTHH:mm:ss

	date      time.Time
	timestamp time.Time
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required and must be a positive integer",
		})
	}

	date, ok := validator.IsValidDate(r.AttendanceDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceDate",
			Message: "attendanceDate must be in YYYY-MM-DD format",
		})
	}

	ts, ok := validator.IsValidDateTime(r.AttendanceTime)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceTime",
			Message: "attendanceTime must be in YYYY-MM-DDTHH:mm:ss format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if DateOf(ts) != date {
		return validator.ValidationErrors{{
			Field:   "attendanceTime",
			Message: "attendanceTime must fall on attendanceDate",
		}}
	}

	r.date = date
	r.timestamp = ts
	return nil
}

// Date returns the parsed attendance date. Valid only after Validate.
func (r *RecordRequest) Date() time.Time { return r.date }

// Timestamp returns the parsed event timestamp. Valid only after Validate.
func (r *RecordRequest) Timestamp() time.Time { return r.timestamp }

// RecordResponse mirrors the wire contract consumed by the mobile terminal
// and the admin web client.
type RecordResponse struct {
	ID             string   `json:"id"`
	StaffID        int64    `json:"staffId"`
	StaffName      string   `json:"staffName,omitempty"`
	DepartmentID   int64    `json:"departmentId,omitempty"`
	DepartmentName string   `json:"departmentName,omitempty"`
	AttendanceDate string   `json:"attendanceDate"`
	ArrivalTime    *string  `json:"arrivalTime,omitempty"`
	DepartureTime  *string  `json:"departureTime,omitempty"`
	Status         Status   `json:"status"`
	IsLate         bool     `json:"isLate"`
	HoursWorked    *float64 `json:"hoursWorked,omitempty"`
}
