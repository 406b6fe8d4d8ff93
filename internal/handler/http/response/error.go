package response

import (
	"errors"
	"net/http"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/auth"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/department"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/shift"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/timerecord"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Sentinel errors are
// matched first; anything else falls through to the fault kind carried on
// the error chain.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employees and master data
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee already exists")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "Shift already exists")

	// Time clock
	case errors.Is(err, timerecord.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this date")
	case errors.Is(err, timerecord.ErrNotCheckedIn):
		Conflict(w, "Not checked in for this date")
	case errors.Is(err, timerecord.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for this date")
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrInvalidTimeData):
		BadRequest(w, "Stored time data is malformed", nil)

	// Payroll and reports
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, report.ErrUnknownPeriod):
		BadRequest(w, "Period must be week, month or year", nil)
	case errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, "Year filter is out of range", nil)
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month filter must be between 1 and 12", nil)
	case errors.Is(err, report.ErrViewNotFound):
		NotFound(w, "Report view does not exist in the connected database")
	case errors.Is(err, report.ErrTableNotFound):
		NotFound(w, "View or table not found")

	default:
		handleFault(w, err)
	}
}

func handleFault(w http.ResponseWriter, err error) {
	switch fault.KindOf(err) {
	case fault.KindParse:
		BadRequest(w, err.Error(), nil)
	case fault.KindNotFound:
		NotFound(w, err.Error())
	case fault.KindConflict:
		Conflict(w, err.Error())
	case fault.KindConfiguration:
		InternalServerError(w, "Server configuration error")
	case fault.KindConnection:
		ServiceUnavailable(w, "Database unavailable")
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
