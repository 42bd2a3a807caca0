package employee

import "time"

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeWithCount carries the derived number of apartments the employee is
// assigned to, as shown on the employee card.
type EmployeeWithCount struct {
	Employee
	AssignmentCount int64
}

// FullName is the display form used by cards and by the top-employee stat.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
