package apartment

import (
	"context"
	"slices"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/pkg/validator"
)

type ApartmentServiceImpl struct {
	apartmentRepo apartment.ApartmentRepository
	employeeRepo  employee.EmployeeRepository
}

func NewApartmentService(
	apartmentRepo apartment.ApartmentRepository,
	employeeRepo employee.EmployeeRepository,
) apartment.ApartmentService {
	return &ApartmentServiceImpl{
		apartmentRepo: apartmentRepo,
		employeeRepo:  employeeRepo,
	}
}

// ListApartments implements apartment.ApartmentService.
func (s *ApartmentServiceImpl) ListApartments(ctx context.Context) ([]apartment.ApartmentResponse, error) {
	apartments, err := s.apartmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]apartment.ApartmentResponse, 0, len(apartments))
	for _, apt := range apartments {
		responses = append(responses, mapApartmentToResponse(apt))
	}

	return responses, nil
}

// GetApartment implements apartment.ApartmentService.
func (s *ApartmentServiceImpl) GetApartment(ctx context.Context, id int64) (apartment.ApartmentResponse, error) {
	apt, err := s.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		return apartment.ApartmentResponse{}, err
	}

	return mapApartmentToResponse(apt), nil
}

// CreateApartment implements apartment.ApartmentService.
func (s *ApartmentServiceImpl) CreateApartment(ctx context.Context, req apartment.SaveApartmentRequest) (apartment.ApartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return apartment.ApartmentResponse{}, err
	}

	entity := toEntity(req)
	if err := s.checkAssignedEmployees(ctx, entity.EmployeeIDs); err != nil {
		return apartment.ApartmentResponse{}, err
	}

	created, err := s.apartmentRepo.Create(ctx, entity)
	if err != nil {
		return apartment.ApartmentResponse{}, err
	}

	return mapApartmentToResponse(created), nil
}

// UpdateApartment implements apartment.ApartmentService. The request is the
// same full form object as on create; the assignment set is replaced, not
// merged.
func (s *ApartmentServiceImpl) UpdateApartment(ctx context.Context, id int64, req apartment.SaveApartmentRequest) (apartment.ApartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return apartment.ApartmentResponse{}, err
	}

	entity := toEntity(req)
	if err := s.checkAssignedEmployees(ctx, entity.EmployeeIDs); err != nil {
		return apartment.ApartmentResponse{}, err
	}

	updated, err := s.apartmentRepo.Update(ctx, id, entity)
	if err != nil {
		return apartment.ApartmentResponse{}, err
	}

	return mapApartmentToResponse(updated), nil
}

// DeleteApartment implements apartment.ApartmentService.
func (s *ApartmentServiceImpl) DeleteApartment(ctx context.Context, id int64) error {
	return s.apartmentRepo.Delete(ctx, id)
}

// checkAssignedEmployees rejects the write when any referenced employee row
// is gone, so a stale form submit cannot recreate a deleted employee's
// assignment.
func (s *ApartmentServiceImpl) checkAssignedEmployees(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	missing, err := s.employeeRepo.MissingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apartment.ErrAssignedEmployeeMissing
	}

	return nil
}

func toEntity(req apartment.SaveApartmentRequest) apartment.Apartment {
	// Validate already checked the format
	cleaningDate, _ := validator.IsValidDate(req.CleaningDate)

	return apartment.Apartment{
		Name:          req.Name,
		CleaningDate:  cleaningDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        apartment.Status(req.Status),
		PaymentStatus: apartment.PaymentStatus(req.PaymentStatus),
		Notes:         req.Notes,
		EmployeeIDs:   dedupeEmployeeIDs(req.EmployeeIDs),
	}
}

// dedupeEmployeeIDs normalizes the submitted id list into a sorted set, so
// double-toggled checkboxes cannot produce duplicate assignment rows.
func dedupeEmployeeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return []int64{}
	}

	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

func mapApartmentToResponse(apt apartment.Apartment) apartment.ApartmentResponse {
	employeeIDs := apt.EmployeeIDs
	if employeeIDs == nil {
		employeeIDs = []int64{}
	}

	return apartment.ApartmentResponse{
		ID:            apt.ID,
		Name:          apt.Name,
		CleaningDate:  apt.CleaningDate.Format("2006-01-02"),
		StartTime:     apt.StartTime,
		EndTime:       apt.EndTime,
		Status:        string(apt.Status),
		PaymentStatus: string(apt.PaymentStatus),
		Notes:         apt.Notes,
		EmployeeIDs:   employeeIDs,
		CreatedAt:     apt.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     apt.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
