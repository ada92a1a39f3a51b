package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/report"
	"github.com/isj-group4/fingerprint-attendance-go/internal/handler/http/response"
	reportservice "github.com/isj-group4/fingerprint-attendance-go/internal/service/report"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler. format selects the encoding: json
// (default) returns the full report envelope, csv and xlsx stream the table
// as a download.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	monthly, err := h.reportService.MonthlyReport(r.Context(), report.MonthlyReportRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "json":
		response.Success(w, monthly)

	case "csv":
		data, err := reportservice.EncodeCSV(monthly.Table)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		serveDownload(w, data, "text/csv", fmt.Sprintf("attendance-%04d-%02d.csv", year, month))

	case "xlsx":
		data, err := reportservice.EncodeXLSX(monthly.Table)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		serveDownload(w, data,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			fmt.Sprintf("attendance-%04d-%02d.xlsx", year, month))

	default:
		response.BadRequest(w, "format must be one of json, csv, xlsx", nil)
	}
}

func serveDownload(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
