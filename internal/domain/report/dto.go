package report

import (
	"fmt"
	"time"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/stats"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/validator"
)

// Table is the encoding-agnostic report contract: a fixed column order, one
// row per staff member in aggregator order, a blank separator row, then six
// summary rows. The field set, order and rounding are part of the engine's
// contract; the concrete encoding (CSV, XLSX, JSON) is not.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodMonth int    `json:"periodMonth"`
	PeriodYear  int    `json:"periodYear"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	GeneratedAt string `json:"generatedAt"`

	Stats stats.PeriodStats `json:"stats"`
	Table Table             `json:"table"`
}
