package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByName(ctx context.Context, name string) (*Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Employee, error)
}

// EmployeeService defines the business operations over the directory.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]EmployeeResponse, error)
}
