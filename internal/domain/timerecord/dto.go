package timerecord

import (
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmpID     string `json:"emp_id"`
	WorkDate  string `json:"work_date"`
	JobType   string `json:"job_type"`
	ShiftCode string `json:"shift_code"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.JobType) {
		errs = append(errs, validator.ValidationError{Field: "job_type", Message: "job_type is required"})
	}
	if validator.IsEmpty(r.ShiftCode) {
		errs = append(errs, validator.ValidationError{Field: "shift_code", Message: "shift_code is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmpID    string `json:"emp_id"`
	WorkDate string `json:"work_date"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateRecordRequest is the admin backfill path: a complete row inserted
// directly, bypassing the clock.
type CreateRecordRequest struct {
	EmpID        string  `json:"emp_id"`
	WorkDate     string  `json:"work_date"`
	JobType      string  `json:"job_type"`
	ShiftCode    *string `json:"shift_code"`
	ScheduledIn  *string `json:"scheduled_in"`
	ScheduledOut *string `json:"scheduled_out"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	Department   *string `json:"department"`
	BeforeOT     *string `json:"before_ot"`
	AfterOT      *string `json:"after_ot"`
	BetweenOT    *string `json:"between_ot"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must be in YYYY-MM-DD format"})
	}
	for field, val := range map[string]*string{
		"scheduled_in":  r.ScheduledIn,
		"scheduled_out": r.ScheduledOut,
		"clock_in":      r.ClockIn,
		"clock_out":     r.ClockOut,
	} {
		if val != nil && !validator.IsValidTimeOfDay(*val) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be in HH:MM:SS format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmpID *string
	Limit int
}

type TimeRecordResponse struct {
	EmpID        string  `json:"emp_id"`
	WorkDate     string  `json:"work_date"`
	JobType      string  `json:"job_type"`
	ShiftCode    *string `json:"shift_code"`
	ScheduledIn  *string `json:"scheduled_in"`
	ScheduledOut *string `json:"scheduled_out"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	Department   *string `json:"department"`
	BeforeOT     *string `json:"before_ot"`
	AfterOT      *string `json:"after_ot"`
	BetweenOT    *string `json:"between_ot"`
}

// CheckOutResponse reports the computed overtime alongside the final record.
type CheckOutResponse struct {
	Record       TimeRecordResponse `json:"record"`
	BeforeOT     string             `json:"before_ot"`
	AfterOT      string             `json:"after_ot"`
	BetweenOT    string             `json:"between_ot"`
	TotalOTHours string             `json:"total_ot_hours"`
}
