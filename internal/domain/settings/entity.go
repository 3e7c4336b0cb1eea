package settings

import "time"

// MailSettings is the single-row configuration for daily report delivery.
// The sender authenticates against the SMTP relay with an app password.
type MailSettings struct {
	ID             string
	RecipientEmail string
	SenderEmail    string
	AppPassword    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
