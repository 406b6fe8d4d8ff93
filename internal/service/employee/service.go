package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/department"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
	"github.com/workforce-analytics/workforce-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
	}
}

// inTx runs fn inside a database transaction when a pool is configured.
func (e *EmployeeServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if e.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, e.db, fn)
}

const dateLayout = "2006-01-02"

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		EmpID:      emp.EmpID,
		Department: emp.Department,
		Position:   emp.Position,
		DeptID:     emp.DeptID,
	}
	if emp.BaseSalary != nil {
		s := emp.BaseSalary.StringFixed(2)
		resp.BaseSalary = &s
	}
	if emp.StartDate != nil {
		s := emp.StartDate.Format(dateLayout)
		resp.StartDate = &s
	}
	return resp
}

// CreateEmployee implements employee.EmployeeService. A dept_id is only
// accepted when the department exists.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		EmpID:      req.EmpID,
		Department: req.Department,
		Position:   req.Position,
		DeptID:     req.DeptID,
	}

	if req.BaseSalary != nil && *req.BaseSalary != "" {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fault.Parse("create employee", req.EmpID, err)
		}
		emp.BaseSalary = &salary
	}
	if req.StartDate != nil && *req.StartDate != "" {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return employee.EmployeeResponse{}, fault.Parse("create employee", req.EmpID, err)
		}
		emp.StartDate = &startDate
	}

	// The department check and the insert share a transaction, so a
	// department deleted in between cannot leave a dangling dept_id.
	err := e.inTx(ctx, func(ctx context.Context) error {
		if req.DeptID != nil && *req.DeptID != "" {
			exists, err := e.DepartmentRepository.Exists(ctx, *req.DeptID)
			if err != nil {
				return err
			}
			if !exists {
				return fault.NotFound("create employee", *req.DeptID, department.ErrDepartmentNotFound)
			}
		}
		return e.EmployeeRepository.Create(ctx, emp)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, empID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.BaseSalary != nil {
		if _, err := decimal.NewFromString(*req.BaseSalary); err != nil {
			return employee.EmployeeResponse{}, fault.Parse("update employee", req.EmpID, err)
		}
	}

	err := e.inTx(ctx, func(ctx context.Context) error {
		if req.DeptID != nil && *req.DeptID != "" {
			exists, err := e.DepartmentRepository.Exists(ctx, *req.DeptID)
			if err != nil {
				return err
			}
			if !exists {
				return fault.NotFound("update employee", *req.DeptID, department.ErrDepartmentNotFound)
			}
		}
		return e.EmployeeRepository.Update(ctx, req)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := e.EmployeeRepository.GetByID(ctx, req.EmpID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, empID string) error {
	return e.EmployeeRepository.Delete(ctx, empID)
}
