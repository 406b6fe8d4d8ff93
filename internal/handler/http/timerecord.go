package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/timerecord"
	"github.com/workforce-analytics/workforce-backend-go/internal/handler/http/response"
)

type TimeRecordHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	CreateRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &timeRecordHandlerImpl{timeRecordService: timeRecordService}
}

// CheckIn implements TimeRecordHandler
func (h *timeRecordHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.timeRecordService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", resp)
}

// CheckOut implements TimeRecordHandler
func (h *timeRecordHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.timeRecordService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

// CreateRecord implements TimeRecordHandler - admin backfill
func (h *timeRecordHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.timeRecordService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record created", resp)
}

// ListRecords implements TimeRecordHandler
func (h *timeRecordHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := timerecord.ListFilter{}
	if empID := r.URL.Query().Get("emp_id"); empID != "" {
		filter.EmpID = &empID
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}

	resp, err := h.timeRecordService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DeleteRecord implements TimeRecordHandler
func (h *timeRecordHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	empID := r.URL.Query().Get("emp_id")
	workDate := r.URL.Query().Get("work_date")
	if empID == "" || workDate == "" {
		response.BadRequest(w, "emp_id and work_date are required", nil)
		return
	}

	if err := h.timeRecordService.DeleteRecord(r.Context(), empID, workDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}
