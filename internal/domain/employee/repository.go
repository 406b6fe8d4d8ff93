package employee

import "context"

// EmployeeRepository defines data access for the employees table.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) error
	GetByID(ctx context.Context, empID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, empID string) error
	Count(ctx context.Context) (int64, error)
}
