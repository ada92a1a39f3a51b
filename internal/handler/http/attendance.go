package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	GetByStaffAndDate(w http.ResponseWriter, r *http.Request)
	ListByDepartment(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance event recorded", resp)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// ListByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func staffIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	return id, err == nil && id > 0
}

// ListByStaff implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := staffIDParam(r)
	if !ok {
		response.BadRequest(w, "staffID must be a positive integer", nil)
		return
	}

	records, err := h.attendanceService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// GetByStaffAndDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetByStaffAndDate(w http.ResponseWriter, r *http.Request) {
	staffID, ok := staffIDParam(r)
	if !ok {
		response.BadRequest(w, "staffID must be a positive integer", nil)
		return
	}

	record, err := h.attendanceService.GetByStaffAndDate(r.Context(), staffID, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// ListByDepartment implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, err := strconv.ParseInt(chi.URLParam(r, "departmentID"), 10, 64)
	if err != nil || departmentID <= 0 {
		response.BadRequest(w, "departmentID must be a positive integer", nil)
		return
	}

	records, err := h.attendanceService.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListByRange implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListByRange(
		r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
