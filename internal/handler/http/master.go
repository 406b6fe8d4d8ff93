package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/department"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/shift"
	"github.com/workforce-analytics/workforce-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	departmentService department.DepartmentService
	shiftService      shift.ShiftService
}

func NewMasterHandler(departmentService department.DepartmentService, shiftService shift.ShiftService) MasterHandler {
	return &masterHandlerImpl{
		departmentService: departmentService,
		shiftService:      shiftService,
	}
}

// CreateDepartment implements MasterHandler
func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", resp)
}

// GetDepartment implements MasterHandler
func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "deptID")
	if deptID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	resp, err := h.departmentService.GetDepartment(r.Context(), deptID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListDepartments implements MasterHandler
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	resp, err := h.departmentService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateDepartment implements MasterHandler
func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "deptID")
	if deptID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.DeptID = deptID

	resp, err := h.departmentService.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", resp)
}

// DeleteDepartment implements MasterHandler
func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "deptID")
	if deptID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	if err := h.departmentService.DeleteDepartment(r.Context(), deptID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}

// CreateShift implements MasterHandler
func (h *masterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", resp)
}

// GetShift implements MasterHandler
func (h *masterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	shiftCode := chi.URLParam(r, "shiftCode")
	if shiftCode == "" {
		response.BadRequest(w, "Shift code is required", nil)
		return
	}

	resp, err := h.shiftService.GetShift(r.Context(), shiftCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListShifts implements MasterHandler
func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateShift implements MasterHandler
func (h *masterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shiftCode := chi.URLParam(r, "shiftCode")
	if shiftCode == "" {
		response.BadRequest(w, "Shift code is required", nil)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ShiftCode = shiftCode

	resp, err := h.shiftService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", resp)
}

// DeleteShift implements MasterHandler
func (h *masterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftCode := chi.URLParam(r, "shiftCode")
	if shiftCode == "" {
		response.BadRequest(w, "Shift code is required", nil)
		return
	}

	if err := h.shiftService.DeleteShift(r.Context(), shiftCode); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
