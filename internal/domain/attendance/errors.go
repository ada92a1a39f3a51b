package attendance

import "errors"

// Attendance domain errors
var (
	// Recording errors
	ErrStaffNotFound = errors.New("staff not found")
	ErrStaffInactive = errors.New("staff is not active")
	ErrDayComplete   = errors.New("attendance already complete for this day")
	ErrLockTimeout   = errors.New("attendance record is being updated by another request")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")

	// Invariant violation: a departure without an arrival signals a bug in
	// the recording protocol, not a user mistake.
	ErrInconsistentRecord = errors.New("attendance record has departure without arrival")
)
