package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (emp_id, department, position, base_salary, start_date, dept_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		emp.EmpID, emp.Department, emp.Position, emp.BaseSalary, emp.StartDate, emp.DeptID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fault.Conflict("create employee", emp.EmpID, employee.ErrEmployeeExists)
		}
		return storeError("create employee", emp.EmpID, err)
	}

	return nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT emp_id, department, position, base_salary, start_date, dept_id
		FROM employees
		WHERE emp_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, empID).Scan(
		&emp.EmpID, &emp.Department, &emp.Position, &emp.BaseSalary, &emp.StartDate, &emp.DeptID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, storeError("get employee", empID, err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT emp_id, department, position, base_salary, start_date, dept_id
		FROM employees
		ORDER BY emp_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list employees", "", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.EmpID, &emp.Department, &emp.Position, &emp.BaseSalary, &emp.StartDate, &emp.DeptID,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository. Only the fields present
// on the request make it into the SET clause.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	setClauses := []string{}
	args := []any{}
	argIdx := 1

	if req.Department != nil {
		setClauses = append(setClauses, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.Position != nil {
		setClauses = append(setClauses, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.BaseSalary != nil {
		setClauses = append(setClauses, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.StartDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.DeptID != nil {
		setClauses = append(setClauses, fmt.Sprintf("dept_id = $%d", argIdx))
		args = append(args, *req.DeptID)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE emp_id = $%d",
		strings.Join(setClauses, ", "), argIdx,
	)
	args = append(args, req.EmpID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return storeError("update employee", req.EmpID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, empID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE emp_id = $1`, empID)
	if err != nil {
		return storeError("delete employee", empID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, storeError("count employees", "", err)
	}

	return count, nil
}
