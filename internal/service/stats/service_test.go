package stats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/stats"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/clock"
	"github.com/isj-group4/fingerprint-attendance-go/internal/repository/memory"
)

func profiles(n int) []staff.Profile {
	out := make([]staff.Profile, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, staff.Profile{
			ID:             int64(i),
			Name:           fmt.Sprintf("Staff%d", i),
			Active:         true,
			DepartmentID:   1,
			DepartmentName: "Operations",
		})
	}
	return out
}

func arriveAt(t *testing.T, repo attendance.Repository, staffID int64, ts time.Time) {
	t.Helper()
	_, err := repo.Mutate(context.Background(), staffID, ts, func(existing *attendance.Record) (attendance.Record, error) {
		if existing != nil {
			rec := *existing
			rec.DepartureAt = &ts
			return rec, nil
		}
		return attendance.Record{ArrivalAt: &ts}, nil
	})
	require.NoError(t, err)
}

func newStatsService(records attendance.Repository, staffRepo staff.Repository, now time.Time) stats.Service {
	threshold, _ := attendance.ParseTimeOfDay("09:00:00")
	return NewStatsService(records, staffRepo, threshold, clock.Fixed(now))
}

func TestDailyStats_RatesAndCounts(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository(profiles(8))
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// 7 of 8 present, one of them late.
	for i := int64(1); i <= 6; i++ {
		arriveAt(t, records, i, day.Add(8*time.Hour))
	}
	arriveAt(t, records, 7, day.Add(9*time.Hour+30*time.Minute))

	svc := newStatsService(records, staffRepo, day)
	got, err := svc.DailyStats(context.Background(), "2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, 8, got.TotalStaff)
	assert.Equal(t, 7, got.PresentCount)
	assert.Equal(t, 1, got.AbsentCount)
	assert.Equal(t, 1, got.LateCount)
	assert.Equal(t, 87.5, got.AttendanceRate)
	assert.Equal(t, 14.3, got.LateArrivalRate)
}

func TestDailyStats_DefaultsToToday(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository(profiles(2))
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	arriveAt(t, records, 1, day.Add(8*time.Hour))

	svc := newStatsService(records, staffRepo, day.Add(11*time.Hour))
	got, err := svc.DailyStats(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, 1, got.PresentCount)
}

func TestDailyStats_ZeroDenominators(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository(nil)

	svc := newStatsService(records, staffRepo, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	got, err := svc.DailyStats(context.Background(), "2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalStaff)
	assert.Equal(t, 0, got.AbsentCount)
	assert.Zero(t, got.AttendanceRate)
	assert.Zero(t, got.LateArrivalRate)
}

func TestDailyStats_AbsentFlooredAtZero(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	// Two historical records but only one currently active profile.
	all := profiles(2)
	all[1].Active = false
	staffRepo := memory.NewStaffRepository(all)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	arriveAt(t, records, 1, day.Add(8*time.Hour))
	arriveAt(t, records, 2, day.Add(8*time.Hour))

	svc := newStatsService(records, staffRepo, day)
	got, err := svc.DailyStats(context.Background(), "2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, 1, got.TotalStaff)
	assert.Equal(t, 2, got.PresentCount)
	assert.Equal(t, 0, got.AbsentCount)
}

func TestPeriodStats_PercentageAndSort(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository(profiles(3))
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// 22 working days; staff 1 present 18, staff 2 present 22, staff 3 present 18.
	for day := 0; day < 22; day++ {
		d := start.AddDate(0, 0, day)
		arriveAt(t, records, 2, d.Add(8*time.Hour))
		if day < 18 {
			arriveAt(t, records, 1, d.Add(8*time.Hour))
			arriveAt(t, records, 3, d.Add(8*time.Hour))
		}
	}

	svc := newStatsService(records, staffRepo, start)
	got, err := svc.PeriodStats(context.Background(), "2026-03-02", "2026-03-23")
	require.NoError(t, err)

	assert.Equal(t, 22, got.TotalDays)
	require.Len(t, got.Staff, 3)

	assert.Equal(t, int64(2), got.Staff[0].StaffID)
	assert.Equal(t, 100, got.Staff[0].Percentage)

	// 18/22 rounds to 82; the tie keeps staff insertion order.
	assert.Equal(t, int64(1), got.Staff[1].StaffID)
	assert.Equal(t, 82, got.Staff[1].Percentage)
	assert.Equal(t, int64(3), got.Staff[2].StaffID)
	assert.Equal(t, 82, got.Staff[2].Percentage)

	assert.Equal(t, 3*22-58, got.TotalAbsences)
	assert.Equal(t, 58, got.TotalPresentDays)
}

func TestPeriodStats_EmptyPopulation(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository(nil)

	svc := newStatsService(records, staffRepo, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	got, err := svc.PeriodStats(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)

	assert.Equal(t, 31, got.TotalDays)
	assert.Zero(t, got.TotalStaff)
	assert.Zero(t, got.TotalAbsences)
	assert.Zero(t, got.AttendanceRate)
	assert.Empty(t, got.Staff)
}

func TestPeriodStats_LateArrivalsCounted(t *testing.T) {
	records := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository(profiles(1))
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	arriveAt(t, records, 1, start.Add(8*time.Hour))
	arriveAt(t, records, 1, start.AddDate(0, 0, 1).Add(9*time.Hour+15*time.Minute))

	svc := newStatsService(records, staffRepo, start)
	got, err := svc.PeriodStats(context.Background(), "2026-03-02", "2026-03-03")
	require.NoError(t, err)

	require.Len(t, got.Staff, 1)
	assert.Equal(t, 2, got.Staff[0].DaysPresent)
	assert.Equal(t, 1, got.Staff[0].LateArrivals)
	assert.Equal(t, 100, got.Staff[0].Percentage)
}
