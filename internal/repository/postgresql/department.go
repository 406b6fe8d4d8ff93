package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/department"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, d.db)

	_, err := q.Exec(ctx,
		`INSERT INTO department (dept_id, dept_name, category) VALUES ($1, $2, $3)`,
		dept.DeptID, dept.DeptName, dept.Category,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fault.Conflict("create department", dept.DeptID, department.ErrDepartmentExists)
		}
		return storeError("create department", dept.DeptID, err)
	}

	return nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByID(ctx context.Context, deptID string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	var dept department.Department
	err := q.QueryRow(ctx,
		`SELECT dept_id, dept_name, category FROM department WHERE dept_id = $1`, deptID,
	).Scan(&dept.DeptID, &dept.DeptName, &dept.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, storeError("get department", deptID, err)
	}

	return dept, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.Query(ctx, `SELECT dept_id, dept_name, category FROM department ORDER BY dept_id`)
	if err != nil {
		return nil, storeError("list departments", "", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.DeptID, &dept.DeptName, &dept.Category); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, d.db)

	setClauses := []string{}
	args := []any{}
	argIdx := 1

	if req.DeptName != nil {
		setClauses = append(setClauses, fmt.Sprintf("dept_name = $%d", argIdx))
		args = append(args, *req.DeptName)
		argIdx++
	}
	if req.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *req.Category)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE department SET %s WHERE dept_id = $%d",
		strings.Join(setClauses, ", "), argIdx,
	)
	args = append(args, req.DeptID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return storeError("update department", req.DeptID, err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Delete(ctx context.Context, deptID string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM department WHERE dept_id = $1`, deptID)
	if err != nil {
		return storeError("delete department", deptID, err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Exists implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Exists(ctx context.Context, deptID string) (bool, error) {
	q := GetQuerier(ctx, d.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM department WHERE dept_id = $1)`, deptID,
	).Scan(&exists)
	if err != nil {
		return false, storeError("check department", deptID, err)
	}

	return exists, nil
}
