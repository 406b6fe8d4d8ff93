package payroll

import "context"

type PayrollService interface {
	UpsertEntry(ctx context.Context, req *UpsertPayrollRequest) (*PayrollResponse, error)
	GetEntry(ctx context.Context, empID, month string) (*PayrollResponse, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]PayrollResponse, error)
	DeleteEntry(ctx context.Context, empID, month string) error
}
