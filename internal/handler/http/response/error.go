package response

import (
	"errors"
	"net/http"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/auth"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/employee"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/settings"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Work record domain errors
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Work record not found")
	case errors.Is(err, record.ErrDuplicateRecord):
		Conflict(w, "A record for this employee and work day already exists")
	case errors.Is(err, record.ErrDayNoteNotFound):
		NotFound(w, "No note for this work day")

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "An employee with this name is already registered")

	// Report domain errors
	case errors.Is(err, report.ErrNoRecordsForDay):
		NotFound(w, "No work records found for this work day")
	case errors.Is(err, report.ErrUnknownFormat):
		BadRequest(w, "Unknown report format", nil)
	case errors.Is(err, report.ErrDispatchNotFound):
		NotFound(w, "Report dispatch not found")

	// Mail settings errors
	case errors.Is(err, settings.ErrNotConfigured):
		NotFound(w, "Mail settings are not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
