package employee

import (
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/validator"
)

// EmployeeResponse represents the response structure for an employee.
type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PixKey    string `json:"pix_key"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateEmployeeRequest represents the request structure for registering an employee.
type CreateEmployeeRequest struct {
	Name   string `json:"name"`
	PixKey string `json:"pix_key"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents the request structure for updating an employee.
type UpdateEmployeeRequest struct {
	ID     string  `json:"-"` // From URL
	Name   *string `json:"name,omitempty"`
	PixKey *string `json:"pix_key,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse maps an Employee to its response shape.
func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		PixKey:    emp.PixKey,
		CreatedAt: emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
