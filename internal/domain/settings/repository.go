package settings

import "context"

// SettingsRepository stores the single mail settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*MailSettings, error)
	Save(ctx context.Context, s MailSettings) (MailSettings, error)
}

// SettingsService defines the business operations over mail settings.
type SettingsService interface {
	Get(ctx context.Context) (MailSettingsResponse, error)
	Save(ctx context.Context, req SaveMailSettingsRequest) (MailSettingsResponse, error)
}
