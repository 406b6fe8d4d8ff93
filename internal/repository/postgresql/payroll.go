package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Upsert implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Upsert(ctx context.Context, entry *payroll.Payroll) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll (emp_id, month, total_work_hours, total_ot_hours, ot_rate, total_salary)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (emp_id, month) DO UPDATE SET
			total_work_hours = EXCLUDED.total_work_hours,
			total_ot_hours = EXCLUDED.total_ot_hours,
			ot_rate = EXCLUDED.ot_rate,
			total_salary = EXCLUDED.total_salary
	`

	_, err := q.Exec(ctx, query,
		entry.EmpID, entry.Month, entry.TotalWorkHours, entry.TotalOTHours,
		entry.OTRate, entry.TotalSalary,
	)
	if err != nil {
		return storeError("upsert payroll", entry.EmpID+" "+entry.Month, err)
	}

	return nil
}

// ApplyOvertime implements payroll.PayrollRepository. Null totals are
// treated as zero so the first roll-up of a month works the same as the
// tenth.
func (p *payrollRepositoryImpl) ApplyOvertime(ctx context.Context, empID, month string, otHours, otPay decimal.Decimal) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll (emp_id, month, total_ot_hours, total_salary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (emp_id, month) DO UPDATE SET
			total_ot_hours = COALESCE(payroll.total_ot_hours, 0) + EXCLUDED.total_ot_hours,
			total_salary = COALESCE(payroll.total_salary, 0) + EXCLUDED.total_salary
	`

	_, err := q.Exec(ctx, query, empID, month, otHours, otPay)
	if err != nil {
		return storeError("apply overtime to payroll", empID+" "+month, err)
	}

	return nil
}

// GetByEmployeeAndMonth implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, empID, month string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT emp_id, month, total_work_hours, total_ot_hours, ot_rate, total_salary
		FROM payroll
		WHERE emp_id = $1 AND month = $2
	`

	var entry payroll.Payroll
	err := q.QueryRow(ctx, query, empID, month).Scan(
		&entry.EmpID, &entry.Month, &entry.TotalWorkHours, &entry.TotalOTHours,
		&entry.OTRate, &entry.TotalSalary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, storeError("get payroll", empID+" "+month, err)
	}

	return &entry, nil
}

// List implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	args := []any{}
	query := `
		SELECT emp_id, month, total_work_hours, total_ot_hours, ot_rate, total_salary
		FROM payroll
	`
	conds := ""
	if filter.EmpID != nil {
		conds = ` WHERE emp_id = $1`
		args = append(args, *filter.EmpID)
	}
	if filter.Month != nil {
		if conds == "" {
			conds = fmt.Sprintf(` WHERE month = $%d`, len(args)+1)
		} else {
			conds += fmt.Sprintf(` AND month = $%d`, len(args)+1)
		}
		args = append(args, *filter.Month)
	}
	query += conds + fmt.Sprintf(` ORDER BY month DESC, emp_id LIMIT $%d`, len(args)+1)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list payroll entries", "", err)
	}
	defer rows.Close()

	var entries []payroll.Payroll
	for rows.Next() {
		var entry payroll.Payroll
		if err := rows.Scan(
			&entry.EmpID, &entry.Month, &entry.TotalWorkHours, &entry.TotalOTHours,
			&entry.OTRate, &entry.TotalSalary,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Delete(ctx context.Context, empID, month string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll WHERE emp_id = $1 AND month = $2`, empID, month)
	if err != nil {
		return storeError("delete payroll", empID+" "+month, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
