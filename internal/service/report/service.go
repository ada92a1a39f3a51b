package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/report"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/stats"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/clock"
)

var tableColumns = []string{"Name", "Department", "DaysPresent", "TotalDays", "Percentage", "LateArrivals"}

type ReportServiceImpl struct {
	stats stats.Service
	clock clock.Clock
}

func NewReportService(statsService stats.Service, clk clock.Clock) report.Service {
	return &ReportServiceImpl{stats: statsService, clock: clk}
}

func percentCell(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// BuildPeriodReport renders aggregated period stats as the tabular report:
// one row per staff member in aggregator order, a blank separator row, then
// the summary block.
func BuildPeriodReport(period stats.PeriodStats) report.Table {
	rows := make([][]string, 0, len(period.Staff)+7)
	for _, s := range period.Staff {
		rows = append(rows, []string{
			s.Name,
			s.Department,
			strconv.Itoa(s.DaysPresent),
			strconv.Itoa(s.TotalDays),
			strconv.Itoa(s.Percentage) + "%",
			strconv.Itoa(s.LateArrivals),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Summary"},
		[]string{"Period", period.StartDate + " - " + period.EndDate},
		[]string{"TotalDays", strconv.Itoa(period.TotalDays)},
		[]string{"AttendanceRate", percentCell(period.AttendanceRate)},
		[]string{"LateArrivalRate", percentCell(period.LateArrivalRate)},
		[]string{"TotalAbsences", strconv.Itoa(period.TotalAbsences)},
	)

	return report.Table{Columns: tableColumns, Rows: rows}
}

// MonthlyReport implements report.Service.
func (r *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	period, err := r.stats.PeriodStats(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to aggregate period stats: %w", err)
	}

	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: period.StartDate,
		PeriodEnd:   period.EndDate,
		GeneratedAt: r.clock.Now().Format("2006-01-02T15:04:05"),
		Stats:       period,
		Table:       BuildPeriodReport(period),
	}, nil
}

// PeriodTable implements report.Service.
func (r *ReportServiceImpl) PeriodTable(ctx context.Context, startDate, endDate string) (report.Table, error) {
	period, err := r.stats.PeriodStats(ctx, startDate, endDate)
	if err != nil {
		return report.Table{}, err
	}
	return BuildPeriodReport(period), nil
}
