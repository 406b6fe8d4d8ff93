package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
}

func NewPayrollService(repo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{PayrollRepository: repo}
}

func parseDecimalField(op, name string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fault.Parse(op, name, err)
	}
	return &d, nil
}

// UpsertEntry implements payroll.PayrollService.
func (p *PayrollServiceImpl) UpsertEntry(ctx context.Context, req *payroll.UpsertPayrollRequest) (*payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &payroll.Payroll{
		EmpID: req.EmpID,
		Month: req.Month,
	}

	var err error
	if entry.TotalWorkHours, err = parseDecimalField("upsert payroll", "total_work_hours", req.TotalWorkHours); err != nil {
		return nil, err
	}
	if entry.TotalOTHours, err = parseDecimalField("upsert payroll", "total_ot_hours", req.TotalOTHours); err != nil {
		return nil, err
	}
	if entry.OTRate, err = parseDecimalField("upsert payroll", "ot_rate", req.OTRate); err != nil {
		return nil, err
	}
	if entry.TotalSalary, err = parseDecimalField("upsert payroll", "total_salary", req.TotalSalary); err != nil {
		return nil, err
	}

	if err := p.PayrollRepository.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	resp := payroll.ToPayrollResponse(entry)
	return &resp, nil
}

// GetEntry implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetEntry(ctx context.Context, empID, month string) (*payroll.PayrollResponse, error) {
	entry, err := p.PayrollRepository.GetByEmployeeAndMonth(ctx, empID, month)
	if err != nil {
		return nil, err
	}

	resp := payroll.ToPayrollResponse(entry)
	return &resp, nil
}

// ListEntries implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	entries, err := p.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, payroll.ToPayrollResponse(&entry))
	}
	return responses, nil
}

// DeleteEntry implements payroll.PayrollService.
func (p *PayrollServiceImpl) DeleteEntry(ctx context.Context, empID, month string) error {
	return p.PayrollRepository.Delete(ctx, empID, month)
}
