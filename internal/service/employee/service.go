package employee

import (
	"context"
	"fmt"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/employee"
)

const tableName = "employees"

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	auditSvc     audit.AuditService
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, auditSvc audit.AuditService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		auditSvc:     auditSvc,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByName(ctx, req.Name)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check for existing employee: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrNameExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:   req.Name,
		PixKey: req.PixKey,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.ToResponse(created)
	s.auditSvc.Record(ctx, audit.ActionCreate, tableName, &created.ID, nil, resp)
	return resp, nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	before := employee.ToResponse(emp)

	if req.Name != nil && *req.Name != emp.Name {
		existing, err := s.employeeRepo.GetByName(ctx, *req.Name)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check for existing employee: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrNameExists
		}
		emp.Name = *req.Name
	}
	if req.PixKey != nil {
		emp.PixKey = *req.PixKey
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.ToResponse(emp)
	s.auditSvc.Record(ctx, audit.ActionUpdate, tableName, &emp.ID, before, resp)
	return resp, nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, audit.ActionDelete, tableName, &id, employee.ToResponse(emp), nil)
	return nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}
