package stats

import "context"

// Service computes attendance statistics from record snapshots. Both query
// modes tolerate an empty staff population and an empty record set by
// returning zeros, never an error or a divide fault.
type Service interface {
	// DailyStats computes the stats for one date (YYYY-MM-DD). An empty
	// date means "today" on the engine clock.
	DailyStats(ctx context.Context, date string) (DailyStats, error)

	// PeriodStats computes per-staff and aggregate stats over the inclusive
	// range [startDate, endDate].
	PeriodStats(ctx context.Context, startDate, endDate string) (PeriodStats, error)
}
