package employee

import "errors"

// Employee directory domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameExists       = errors.New("an employee with this name is already registered")
)
