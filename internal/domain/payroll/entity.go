package payroll

import (
	"github.com/shopspring/decimal"
)

// Payroll is one ledger row per (employee, month). Month is a "YYYY-MM"
// key. The row is upserted: a later write for the same pair replaces the
// totals.
type Payroll struct {
	EmpID          string
	Month          string
	TotalWorkHours *decimal.Decimal
	TotalOTHours   *decimal.Decimal
	OTRate         *decimal.Decimal
	TotalSalary    *decimal.Decimal
}
