package settings

import (
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/validator"
)

// MailSettingsResponse never echoes the app password back to clients.
type MailSettingsResponse struct {
	RecipientEmail string `json:"recipient_email"`
	SenderEmail    string `json:"sender_email"`
	HasAppPassword bool   `json:"has_app_password"`
	UpdatedAt      string `json:"updated_at"`
}

// SaveMailSettingsRequest creates or replaces the mail settings row.
type SaveMailSettingsRequest struct {
	RecipientEmail string `json:"recipient_email"`
	SenderEmail    string `json:"sender_email"`
	AppPassword    string `json:"app_password"`
}

func (r *SaveMailSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.RecipientEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient_email",
			Message: "recipient_email must be a valid e-mail address",
		})
	}
	if !validator.IsValidEmail(r.SenderEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "sender_email",
			Message: "sender_email must be a valid e-mail address",
		})
	}
	if validator.IsEmpty(r.AppPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "app_password",
			Message: "app_password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse maps MailSettings to its response shape.
func ToResponse(s MailSettings) MailSettingsResponse {
	return MailSettingsResponse{
		RecipientEmail: s.RecipientEmail,
		SenderEmail:    s.SenderEmail,
		HasAppPassword: s.AppPassword != "",
		UpdatedAt:      s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
