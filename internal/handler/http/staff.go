package http

import (
	"net/http"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/handler/http/response"
)

type StaffHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffRepo staff.Repository
}

func NewStaffHandler(staffRepo staff.Repository) StaffHandler {
	return &staffHandlerImpl{staffRepo: staffRepo}
}

// ListActive implements StaffHandler.
func (h *staffHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.staffRepo.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]staff.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, p.ToResponse())
	}
	response.Success(w, resp)
}

// ListDepartments implements StaffHandler.
func (h *staffHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.staffRepo.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]staff.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		resp = append(resp, staff.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	response.Success(w, resp)
}
