package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	// Upsert replaces the row for (emp_id, month), creating it when absent.
	Upsert(ctx context.Context, entry *Payroll) error
	// ApplyOvertime adds otHours and otPay onto the row for (emp_id, month),
	// creating it when absent. Null totals count as zero.
	ApplyOvertime(ctx context.Context, empID, month string, otHours, otPay decimal.Decimal) error
	GetByEmployeeAndMonth(ctx context.Context, empID, month string) (*Payroll, error)
	List(ctx context.Context, filter ListFilter) ([]Payroll, error)
	Delete(ctx context.Context, empID, month string) error
}
