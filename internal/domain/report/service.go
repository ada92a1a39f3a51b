package report

import "context"

// Service renders aggregated statistics into the tabular report contract.
type Service interface {
	// MonthlyReport builds the period report for one calendar month.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// PeriodTable builds the report table for an arbitrary inclusive range.
	PeriodTable(ctx context.Context, startDate, endDate string) (Table, error)
}
