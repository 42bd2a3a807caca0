package apartment

import "context"

// ApartmentService defines business logic for cleaning job operations
type ApartmentService interface {
	// ListApartments returns every apartment, newest cleaning date first
	ListApartments(ctx context.Context) ([]ApartmentResponse, error)

	// GetApartment retrieves a single apartment by ID
	GetApartment(ctx context.Context, id int64) (ApartmentResponse, error)

	// CreateApartment creates a new apartment from the submitted form object
	CreateApartment(ctx context.Context, req SaveApartmentRequest) (ApartmentResponse, error)

	// UpdateApartment re-submits the form object for an existing apartment
	UpdateApartment(ctx context.Context, id int64, req SaveApartmentRequest) (ApartmentResponse, error)

	// DeleteApartment removes an apartment and its assignments
	DeleteApartment(ctx context.Context, id int64) error
}
