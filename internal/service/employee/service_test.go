package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/department"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/fault"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) error {
	if _, exists := f.employees[emp.EmpID]; exists {
		return employee.ErrEmployeeExists
	}
	f.employees[emp.EmpID] = emp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, empID string) (employee.Employee, error) {
	emp, ok := f.employees[empID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := f.employees[req.EmpID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	f.employees[req.EmpID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, empID string) error {
	if _, ok := f.employees[empID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, empID)
	return nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeDepartmentRepo struct {
	ids map[string]bool
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) error {
	return nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, deptID string) (department.Department, error) {
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, deptID string) error { return nil }

func (f *fakeDepartmentRepo) Exists(ctx context.Context, deptID string) (bool, error) {
	return f.ids[deptID], nil
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{ids: map[string]bool{"D01": true}})

	resp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmpID:      "E001",
		Position:   strPtr("Analyst"),
		BaseSalary: strPtr("4200.50"),
		StartDate:  strPtr("2023-06-01"),
		DeptID:     strPtr("D01"),
	})

	require.NoError(t, err)
	assert.Equal(t, "E001", resp.EmpID)
	require.NotNil(t, resp.BaseSalary)
	assert.Equal(t, "4200.50", *resp.BaseSalary)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2023-06-01", *resp.StartDate)
}

func TestCreateEmployee_UnknownDepartment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{ids: map[string]bool{}})

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmpID:  "E001",
		DeptID: strPtr("D99"),
	})

	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestCreateEmployee_DuplicateID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{})

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmpID: "E001"})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmpID: "E001"})
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)
}

func TestCreateEmployee_InvalidSalary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{})

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmpID:      "E001",
		BaseSalary: strPtr("lots"),
	})
	assert.Equal(t, fault.KindParse, fault.KindOf(err))
}

func TestCreateEmployee_BadIdentifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{})

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{EmpID: "E 001!"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateEmployee_SparseFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo, &fakeDepartmentRepo{})

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmpID:    "E001",
		Position: strPtr("Analyst"),
	})
	require.NoError(t, err)

	resp, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		EmpID:    "E001",
		Position: strPtr("Senior Analyst"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Position)
	assert.Equal(t, "Senior Analyst", *resp.Position)
}

func TestUpdateEmployee_NoFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{})

	_, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{EmpID: "E001"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestDeleteEmployee_Missing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewEmployeeService(nil, newFakeEmployeeRepo(), &fakeDepartmentRepo{})

	err := svc.DeleteEmployee(ctx, "E404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
