package query

import (
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/domain/stats"
)

// Store bundles the dashboard's read caches. Every view derives from the
// same two tables, so any write flushes all three caches rather than
// tracking fine-grained dependencies.
type Store struct {
	Apartments *Cache[[]apartment.ApartmentResponse]
	Employees  *Cache[[]employee.EmployeeResponse]
	Stats      *Cache[*stats.Snapshot]
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		Apartments: New[[]apartment.ApartmentResponse](ttl),
		Employees:  New[[]employee.EmployeeResponse](ttl),
		Stats:      New[*stats.Snapshot](ttl),
	}
}

// Flush empties all caches. Called after any successful mutation.
func (s *Store) Flush() {
	s.Apartments.Invalidate()
	s.Employees.Invalidate()
	s.Stats.Invalidate()
}
