package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/handler/http/response"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

type ReportHandler interface {
	OTSummary(w http.ResponseWriter, r *http.Request)
	DepartmentSummary(w http.ResponseWriter, r *http.Request)
	PayrollSummary(w http.ResponseWriter, r *http.Request)
	RevenueByDepartment(w http.ResponseWriter, r *http.Request)
	BurnoutSummary(w http.ResponseWriter, r *http.Request)
	ListSchemaObjects(w http.ResponseWriter, r *http.Request)
	BrowseRows(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func intParam(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func limitParam(r *http.Request) int {
	if v := intParam(r, "limit"); v != nil {
		return *v
	}
	return 0
}

func periodParam(r *http.Request) (report.Period, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		raw = string(report.PeriodWeek)
	}
	period, err := report.ParsePeriod(raw)
	if err != nil {
		return "", fault.Configuration("parse period", raw, err)
	}
	return period, nil
}

func otFilter(r *http.Request) report.OTFilter {
	filter := report.OTFilter{
		Year:  intParam(r, "year"),
		Month: intParam(r, "month"),
		Limit: limitParam(r),
	}
	if dept := r.URL.Query().Get("department"); dept != "" {
		filter.Department = &dept
	}
	return filter
}

// OTSummary implements ReportHandler
func (h *reportHandlerImpl) OTSummary(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.OTSummary(r.Context(), period, otFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DepartmentSummary implements ReportHandler
func (h *reportHandlerImpl) DepartmentSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.DepartmentSummary(r.Context(), otFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// PayrollSummary implements ReportHandler
func (h *reportHandlerImpl) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.PayrollSummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// RevenueByDepartment implements ReportHandler
func (h *reportHandlerImpl) RevenueByDepartment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.RevenueByDepartment(r.Context(), limitParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// BurnoutSummary implements ReportHandler
func (h *reportHandlerImpl) BurnoutSummary(w http.ResponseWriter, r *http.Request) {
	filter := report.BurnoutFilter{
		Year:  intParam(r, "year"),
		Month: intParam(r, "month"),
	}

	resp, err := h.reportService.BurnoutSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListSchemaObjects implements ReportHandler
func (h *reportHandlerImpl) ListSchemaObjects(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.ListSchemaObjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// BrowseRows implements ReportHandler
func (h *reportHandlerImpl) BrowseRows(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Object name is required", nil)
		return
	}

	resp, err := h.reportService.BrowseRows(r.Context(), name, limitParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
