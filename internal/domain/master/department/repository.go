package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) error
	GetByID(ctx context.Context, deptID string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, deptID string) error
	Exists(ctx context.Context, deptID string) (bool, error)
}
