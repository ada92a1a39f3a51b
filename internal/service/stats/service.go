package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/stats"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/clock"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/utils"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/validator"
)

type StatsServiceImpl struct {
	records       attendance.Repository
	staff         staff.Repository
	lateThreshold attendance.TimeOfDay
	clock         clock.Clock
}

func NewStatsService(
	records attendance.Repository,
	staffRepo staff.Repository,
	lateThreshold attendance.TimeOfDay,
	clk clock.Clock,
) stats.Service {
	return &StatsServiceImpl{
		records:       records,
		staff:         staffRepo,
		lateThreshold: lateThreshold,
		clock:         clk,
	}
}

// wholePercentage rounds part/total*100 half-up to a whole number in one
// step; rounding the one-decimal rate again would shift values like 80.45.
func wholePercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return utils.RoundWhole(float64(part) / float64(total) * 100)
}

// DailyStats implements stats.Service.
func (s *StatsServiceImpl) DailyStats(ctx context.Context, date string) (stats.DailyStats, error) {
	day := attendance.DateOf(s.clock.Now())
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return stats.DailyStats{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		day = parsed
	}

	active, err := s.staff.ListActive(ctx)
	if err != nil {
		return stats.DailyStats{}, fmt.Errorf("failed to list active staff: %w", err)
	}

	records, err := s.records.ListByDate(ctx, day)
	if err != nil {
		return stats.DailyStats{}, err
	}

	present, late := 0, 0
	for i := range records {
		derived, err := attendance.Derive(&records[i], s.lateThreshold)
		if err != nil {
			return stats.DailyStats{}, err
		}
		if derived.Status == attendance.StatusIncomplete {
			continue
		}
		present++
		if derived.IsLate {
			late++
		}
	}

	total := len(active)
	absent := total - present
	if absent < 0 {
		absent = 0
	}

	return stats.DailyStats{
		Date:            day.Format("2006-01-02"),
		TotalStaff:      total,
		PresentCount:    present,
		AbsentCount:     absent,
		LateCount:       late,
		AttendanceRate:  utils.Rate(present, total),
		LateArrivalRate: utils.Rate(late, present),
	}, nil
}

// PeriodStats implements stats.Service.
func (s *StatsServiceImpl) PeriodStats(ctx context.Context, startDate, endDate string) (stats.PeriodStats, error) {
	start, okStart := validator.IsValidDate(startDate)
	end, okEnd := validator.IsValidDate(endDate)
	if !okStart || !okEnd {
		return stats.PeriodStats{}, validator.ValidationErrors{{
			Field:   "start_date",
			Message: "start_date and end_date must be in YYYY-MM-DD format",
		}}
	}
	if end.Before(start) {
		return stats.PeriodStats{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be earlier than start_date",
		}}
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1

	active, err := s.staff.ListActive(ctx)
	if err != nil {
		return stats.PeriodStats{}, fmt.Errorf("failed to list active staff: %w", err)
	}

	records, err := s.records.ListByRange(ctx, start, end)
	if err != nil {
		return stats.PeriodStats{}, err
	}

	type tally struct {
		present int
		late    int
	}
	perStaff := make(map[int64]*tally, len(active))
	for _, p := range active {
		perStaff[p.ID] = &tally{}
	}

	totalPresent, totalLate := 0, 0
	for i := range records {
		derived, err := attendance.Derive(&records[i], s.lateThreshold)
		if err != nil {
			return stats.PeriodStats{}, err
		}
		if derived.Status == attendance.StatusIncomplete {
			continue
		}
		totalPresent++
		if derived.IsLate {
			totalLate++
		}
		if t, ok := perStaff[records[i].StaffID]; ok {
			t.present++
			if derived.IsLate {
				t.late++
			}
		}
	}

	reports := make([]stats.StaffReport, 0, len(active))
	for _, p := range active {
		t := perStaff[p.ID]
		reports = append(reports, stats.StaffReport{
			StaffID:      p.ID,
			Name:         p.FullName(),
			Department:   p.DepartmentName,
			DaysPresent:  t.present,
			TotalDays:    totalDays,
			LateArrivals: t.late,
			Percentage:   wholePercentage(t.present, totalDays),
		})
	}
	// Descending by percentage; ties keep staff insertion order.
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Percentage > reports[j].Percentage
	})

	totalSlots := len(active) * totalDays
	absences := totalSlots - totalPresent
	if absences < 0 {
		absences = 0
	}

	return stats.PeriodStats{
		StartDate:        start.Format("2006-01-02"),
		EndDate:          end.Format("2006-01-02"),
		TotalDays:        totalDays,
		TotalStaff:       len(active),
		TotalPresentDays: totalPresent,
		TotalAbsences:    absences,
		AttendanceRate:   utils.Rate(totalPresent, totalSlots),
		LateArrivalRate:  utils.Rate(totalLate, totalPresent),
		Staff:            reports,
	}, nil
}
