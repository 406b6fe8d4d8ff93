package employee

import (
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID      string  `json:"emp_id"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	BaseSalary *string `json:"base_salary"`
	StartDate  *string `json:"start_date"`
	DeptID     *string `json:"dept_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	} else if !validator.IsValidIdentifier(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id contains invalid characters"})
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries sparse fields; nil means leave unchanged.
type UpdateEmployeeRequest struct {
	EmpID      string  `json:"-"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	BaseSalary *string `json:"base_salary"`
	StartDate  *string `json:"start_date"`
	DeptID     *string `json:"dept_id"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.Department == nil && r.Position == nil && r.BaseSalary == nil && r.StartDate == nil && r.DeptID == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	EmpID      string  `json:"emp_id"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	BaseSalary *string `json:"base_salary"`
	StartDate  *string `json:"start_date"`
	DeptID     *string `json:"dept_id"`
}
