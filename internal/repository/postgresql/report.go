package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/report"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// FetchOTRows implements report.ReportRepository. Duration columns come
// back raw; the service parses them leniently during aggregation.
func (r *reportRepositoryImpl) FetchOTRows(ctx context.Context, filter report.OTFilter) ([]report.OTRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT emp_id, work_date, department, bf_ot, af_ot, bt_ot
		FROM time_records
		WHERE clock_out IS NOT NULL
	`
	args := []any{}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM work_date) = $%d", len(args)+1)
		args = append(args, *filter.Year)
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM work_date) = $%d", len(args)+1)
		args = append(args, *filter.Month)
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND department = $%d", len(args)+1)
		args = append(args, *filter.Department)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("fetch overtime rows", "", err)
	}
	defer rows.Close()

	var result []report.OTRow
	for rows.Next() {
		var row report.OTRow
		if err := rows.Scan(&row.EmpID, &row.WorkDate, &row.Department,
			&row.BeforeOT, &row.AfterOT, &row.BetweenOT); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// FetchPayrollRows implements report.ReportRepository. The view name must
// already be validated against the schema inspector; it is quoted here as
// a defense against accidental misuse, not as the access control.
func (r *reportRepositoryImpl) FetchPayrollRows(ctx context.Context, view string) ([]report.PayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(
		`SELECT emp_id, work_date, department, total_pay FROM %s`,
		pgx.Identifier{view}.Sanitize(),
	)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("fetch payroll rows from", view, err)
	}
	defer rows.Close()

	var result []report.PayrollRow
	for rows.Next() {
		var row report.PayrollRow
		if err := rows.Scan(&row.EmpID, &row.WorkDate, &row.Department, &row.TotalPay); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// FetchBurnoutRows implements report.ReportRepository.
func (r *reportRepositoryImpl) FetchBurnoutRows(ctx context.Context, view, hoursColumn, dateColumn string, filter report.BurnoutFilter) ([]report.BurnoutRow, error) {
	q := GetQuerier(ctx, r.db)

	dateIdent := pgx.Identifier{dateColumn}.Sanitize()
	query := fmt.Sprintf(
		`SELECT emp_id, %s, %s FROM %s WHERE 1=1`,
		dateIdent,
		pgx.Identifier{hoursColumn}.Sanitize(),
		pgx.Identifier{view}.Sanitize(),
	)
	args := []any{}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM %s) = $%d", dateIdent, len(args)+1)
		args = append(args, *filter.Year)
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM %s) = $%d", dateIdent, len(args)+1)
		args = append(args, *filter.Month)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("fetch burnout rows from", view, err)
	}
	defer rows.Close()

	var result []report.BurnoutRow
	for rows.Next() {
		var row report.BurnoutRow
		if err := rows.Scan(&row.EmpID, &row.RefDate, &row.OTHours); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CountDistinctEmployees implements report.ReportRepository.
func (r *reportRepositoryImpl) CountDistinctEmployees(ctx context.Context, filter report.BurnoutFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(DISTINCT emp_id) FROM time_records WHERE 1=1`
	args := []any{}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM work_date) = $%d", len(args)+1)
		args = append(args, *filter.Year)
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM work_date) = $%d", len(args)+1)
		args = append(args, *filter.Month)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, storeError("count distinct employees", "", err)
	}

	return count, nil
}
