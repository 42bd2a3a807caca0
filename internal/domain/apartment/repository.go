package apartment

import "context"

type ApartmentRepository interface {
	// List returns all apartments with their assigned employee ids, newest
	// cleaning date first.
	List(ctx context.Context) ([]Apartment, error)
	GetByID(ctx context.Context, id int64) (Apartment, error)
	// Create inserts the apartment and its assignment set in one transaction.
	Create(ctx context.Context, newApartment Apartment) (Apartment, error)
	// Update rewrites the apartment row and replaces its assignment set in
	// one transaction.
	Update(ctx context.Context, id int64, updated Apartment) (Apartment, error)
	Delete(ctx context.Context, id int64) error
}
