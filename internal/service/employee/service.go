package employee

import (
	"context"
	"strings"

	"github.com/Se02246/OrderMaster/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, query string) ([]employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(found))
	for _, emp := range found {
		responses = append(responses, employee.EmployeeResponse{
			ID:              emp.ID,
			FirstName:       emp.FirstName,
			LastName:        emp.LastName,
			AssignmentCount: emp.AssignmentCount,
			CreatedAt:       emp.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.EmployeeResponse{
		ID:              created.ID,
		FirstName:       created.FirstName,
		LastName:        created.LastName,
		AssignmentCount: 0,
		CreatedAt:       created.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteEmployee implements employee.EmployeeService. Assignments pointing
// at the employee disappear with the row; apartments themselves are kept.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}
