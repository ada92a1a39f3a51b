package attendance

import (
	"fmt"
	"time"

	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/utils"
)

type Status string

const (
	StatusNoRecord          Status = "NO_RECORD"
	StatusArrivalRecorded   Status = "ARRIVAL_RECORDED"
	StatusDepartureRecorded Status = "DEPARTURE_RECORDED"
	StatusComplete          Status = "COMPLETE"
	StatusIncomplete        Status = "INCOMPLETE"
)

// TimeOfDay is a clock time without a date, used for the lateness threshold.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "HH:mm:ss".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) SecondsOfDay() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Derived is the recomputed view of a record's timestamps.
type Derived struct {
	Status      Status
	IsLate      bool
	HoursWorked *float64
}

// Derive recomputes a record's lifecycle status and lateness flag from its
// timestamps. An arrival strictly after lateThreshold counts as late:
// 09:00:00 is on time, 09:00:01 is not. A record with both timestamps gets
// its worked duration as decimal hours rounded half-up to one decimal.
//
// A departure without an arrival is unreachable under the recording protocol
// and reports ErrInconsistentRecord.
func Derive(rec *Record, lateThreshold TimeOfDay) (Derived, error) {
	if rec == nil || (rec.ArrivalAt == nil && rec.DepartureAt == nil) {
		return Derived{Status: StatusIncomplete}, nil
	}

	if rec.ArrivalAt == nil {
		return Derived{}, fmt.Errorf("record %s for staff %d on %s: %w",
			rec.ID, rec.StaffID, rec.Date.Format("2006-01-02"), ErrInconsistentRecord)
	}

	arrival := *rec.ArrivalAt
	arrivalSeconds := arrival.Hour()*3600 + arrival.Minute()*60 + arrival.Second()
	isLate := arrivalSeconds > lateThreshold.SecondsOfDay()

	if rec.DepartureAt == nil {
		return Derived{Status: StatusArrivalRecorded, IsLate: isLate}, nil
	}

	hours := utils.DecimalHours(rec.DepartureAt.Sub(arrival))
	return Derived{Status: StatusComplete, IsLate: isLate, HoursWorked: &hours}, nil
}
