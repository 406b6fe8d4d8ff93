package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is reference data keyed by emp_id. Department is the
// denormalized display name; DeptID is the optional foreign relation,
// validated to exist before assignment.
type Employee struct {
	EmpID      string
	Department *string
	Position   *string
	BaseSalary *decimal.Decimal
	StartDate  *time.Time
	DeptID     *string
}
