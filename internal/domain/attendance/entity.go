package attendance

import (
	"time"
)

// Record is the per-staff, per-day attendance state container. ArrivalAt and
// DepartureAt are each set at most once; DepartureAt only after ArrivalAt and
// never earlier than it. Status is never stored, only derived from the
// timestamps (see Derive), so the two can never drift apart.
type Record struct {
	ID          string
	StaffID     int64
	Date        time.Time // calendar date, normalized to UTC midnight
	ArrivalAt   *time.Time
	DepartureAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateOf normalizes a timestamp to its calendar date (UTC midnight).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
