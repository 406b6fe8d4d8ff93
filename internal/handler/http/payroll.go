package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-analytics/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	UpsertEntry(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// UpsertEntry implements PayrollHandler
func (h *payrollHandlerImpl) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.payrollService.UpsertEntry(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry saved", resp)
}

// GetEntry implements PayrollHandler
func (h *payrollHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	resp, err := h.payrollService.GetEntry(r.Context(), empID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListEntries implements PayrollHandler
func (h *payrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter := payroll.ListFilter{}
	if empID := r.URL.Query().Get("emp_id"); empID != "" {
		filter.EmpID = &empID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}

	resp, err := h.payrollService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DeleteEntry implements PayrollHandler
func (h *payrollHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	if err := h.payrollService.DeleteEntry(r.Context(), empID, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry deleted", nil)
}
