package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll entry not found")
)
