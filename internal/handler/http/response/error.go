package response

import (
	"errors"
	"net/http"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Malformed input is
// always rejected with 400 before anything touches the store.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Error(w, http.StatusBadRequest, "MALFORMED_INPUT", "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Recording protocol errors
	case errors.Is(err, attendance.ErrStaffNotFound):
		Error(w, http.StatusNotFound, "INVALID_STAFF", "Staff not found", nil)
	case errors.Is(err, attendance.ErrStaffInactive):
		Error(w, http.StatusNotFound, "INVALID_STAFF", "Staff is not active", nil)
	case errors.Is(err, attendance.ErrDayComplete):
		Error(w, http.StatusConflict, "DUPLICATE_EVENT", "Attendance already complete for this day", nil)
	case errors.Is(err, attendance.ErrLockTimeout):
		Error(w, http.StatusConflict, "CONCURRENCY_CONFLICT", "Record is being updated, retry the event", nil)

	// Query errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, staff.ErrProfileNotFound):
		Error(w, http.StatusNotFound, "INVALID_STAFF", "Staff not found", nil)
	case errors.Is(err, staff.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Invariant violations surface as server faults, never as user errors
	case errors.Is(err, attendance.ErrInconsistentRecord):
		Error(w, http.StatusInternalServerError, "INCONSISTENT_RECORD", "Attendance record is inconsistent", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
