package apartment

import "errors"

var (
	ErrApartmentNotFound       = errors.New("apartment not found")
	ErrAssignedEmployeeMissing = errors.New("one or more assigned employees do not exist")
)
