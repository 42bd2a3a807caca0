package apartment

import "time"

type Apartment struct {
	ID            int64
	Name          string
	CleaningDate  time.Time
	StartTime     *string
	EndTime       *string
	Status        Status
	PaymentStatus PaymentStatus
	Notes         *string
	EmployeeIDs   []int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// StatusValues is the closed set of job statuses, in board order.
var StatusValues = []string{
	string(StatusToDo),
	string(StatusInProgress),
	string(StatusDone),
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// PaymentStatusValues is the closed set of payment statuses.
var PaymentStatusValues = []string{
	string(PaymentStatusUnpaid),
	string(PaymentStatusPaid),
}
