package master

import (
	"context"

	"github.com/workforce-analytics/workforce-backend-go/internal/domain/master/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: repo}
}

func departmentResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		DeptID:   dept.DeptID,
		DeptName: dept.DeptName,
		Category: dept.Category,
	}
}

// CreateDepartment implements department.DepartmentService.
func (d *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept := department.Department{
		DeptID:   req.DeptID,
		DeptName: req.DeptName,
		Category: req.Category,
	}
	if err := d.DepartmentRepository.Create(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return departmentResponse(dept), nil
}

// GetDepartment implements department.DepartmentService.
func (d *DepartmentServiceImpl) GetDepartment(ctx context.Context, deptID string) (department.DepartmentResponse, error) {
	dept, err := d.DepartmentRepository.GetByID(ctx, deptID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return departmentResponse(dept), nil
}

// ListDepartments implements department.DepartmentService.
func (d *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := d.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, departmentResponse(dept))
	}
	return responses, nil
}

// UpdateDepartment implements department.DepartmentService.
func (d *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := d.DepartmentRepository.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}

	return d.GetDepartment(ctx, req.DeptID)
}

// DeleteDepartment implements department.DepartmentService.
func (d *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, deptID string) error {
	return d.DepartmentRepository.Delete(ctx, deptID)
}
