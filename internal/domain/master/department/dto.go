package department

import (
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

type Department struct {
	DeptID   string
	DeptName *string
	Category *string
}

type CreateDepartmentRequest struct {
	DeptID   string  `json:"dept_id"`
	DeptName *string `json:"dept_name"`
	Category *string `json:"category"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeptID) {
		errs = append(errs, validator.ValidationError{Field: "dept_id", Message: "dept_id is required"})
	} else if !validator.IsValidIdentifier(r.DeptID) {
		errs = append(errs, validator.ValidationError{Field: "dept_id", Message: "dept_id contains invalid characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	DeptID   string  `json:"-"`
	DeptName *string `json:"dept_name"`
	Category *string `json:"category"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeptID) {
		errs = append(errs, validator.ValidationError{Field: "dept_id", Message: "dept_id is required"})
	}
	if r.DeptName == nil && r.Category == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	DeptID   string  `json:"dept_id"`
	DeptName *string `json:"dept_name"`
	Category *string `json:"category"`
}
