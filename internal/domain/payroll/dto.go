package payroll

import (
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

type UpsertPayrollRequest struct {
	EmpID          string  `json:"emp_id"`
	Month          string  `json:"month"`
	TotalWorkHours *string `json:"total_work_hours,omitempty"`
	TotalOTHours   *string `json:"total_ot_hours,omitempty"`
	OTRate         *string `json:"ot_rate,omitempty"`
	TotalSalary    *string `json:"total_salary,omitempty"`
}

func (r *UpsertPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	} else if !validator.IsValidIdentifier(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id contains invalid characters"})
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	} else if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"total_work_hours", r.TotalWorkHours},
		{"total_ot_hours", r.TotalOTHours},
		{"ot_rate", r.OTRate},
		{"total_salary", r.TotalSalary},
	} {
		if f.value != nil && !validator.IsNumeric(*f.value) {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " must be numeric"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmpID *string
	Month *string
	Limit int
}

type PayrollResponse struct {
	EmpID          string  `json:"emp_id"`
	Month          string  `json:"month"`
	TotalWorkHours *string `json:"total_work_hours"`
	TotalOTHours   *string `json:"total_ot_hours"`
	OTRate         *string `json:"ot_rate"`
	TotalSalary    *string `json:"total_salary"`
}

func ToPayrollResponse(p *Payroll) PayrollResponse {
	resp := PayrollResponse{
		EmpID: p.EmpID,
		Month: p.Month,
	}
	if p.TotalWorkHours != nil {
		s := p.TotalWorkHours.StringFixed(2)
		resp.TotalWorkHours = &s
	}
	if p.TotalOTHours != nil {
		s := p.TotalOTHours.StringFixed(2)
		resp.TotalOTHours = &s
	}
	if p.OTRate != nil {
		s := p.OTRate.StringFixed(2)
		resp.OTRate = &s
	}
	if p.TotalSalary != nil {
		s := p.TotalSalary.StringFixed(2)
		resp.TotalSalary = &s
	}
	return resp
}
