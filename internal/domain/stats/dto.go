package stats

// DailyStats is the organization-wide attendance picture for one date.
// Rates are percentages rounded half-up to one decimal and are 0 whenever
// the denominator is 0. AbsentCount is floored at zero: historical records
// can outnumber the currently active headcount and a negative absence count
// would be nonsense on a dashboard.
type DailyStats struct {
	Date            string  `json:"date"`
	TotalStaff      int     `json:"totalStaff"`
	PresentCount    int     `json:"presentCount"`
	AbsentCount     int     `json:"absentCount"`
	LateCount       int     `json:"lateCount"`
	AttendanceRate  float64 `json:"attendanceRate"`
	LateArrivalRate float64 `json:"lateArrivalRate"`
}

// StaffReport is one staff member's attendance over a reporting period.
// Percentage is a whole number on purpose; period reporting is coarser than
// the one-decimal daily rates.
type StaffReport struct {
	StaffID      int64  `json:"staffId"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	DaysPresent  int    `json:"daysPresent"`
	TotalDays    int    `json:"totalDays"`
	LateArrivals int    `json:"lateArrivals"`
	Percentage   int    `json:"percentage"`
}

// PeriodStats aggregates attendance over an inclusive date range. Staff is
// sorted descending by Percentage; ties keep staff insertion order.
type PeriodStats struct {
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	TotalDays        int           `json:"totalDays"`
	TotalStaff       int           `json:"totalStaff"`
	TotalPresentDays int           `json:"totalPresentDays"`
	TotalAbsences    int           `json:"totalAbsences"`
	AttendanceRate   float64       `json:"attendanceRate"`
	LateArrivalRate  float64       `json:"lateArrivalRate"`
	Staff            []StaffReport `json:"staff"`
}
