package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/settings"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository. The table holds at most one
// row; nil means the mail settings were never configured.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (*settings.MailSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_email, sender_email, app_password, created_at, updated_at
		FROM mail_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var s settings.MailSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.RecipientEmail,
		&s.SenderEmail,
		&s.AppPassword,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Save(ctx context.Context, s settings.MailSettings) (settings.MailSettings, error) {
	q := GetQuerier(ctx, r.db)

	// Single-row table keyed by a fixed id
	query := `
		INSERT INTO mail_settings (id, recipient_email, sender_email, app_password)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET recipient_email = EXCLUDED.recipient_email,
					  sender_email = EXCLUDED.sender_email,
					  app_password = EXCLUDED.app_password,
					  updated_at = NOW()
		RETURNING id, recipient_email, sender_email, app_password, created_at, updated_at
	`

	var saved settings.MailSettings
	err := q.QueryRow(ctx, query, s.RecipientEmail, s.SenderEmail, s.AppPassword).Scan(
		&saved.ID,
		&saved.RecipientEmail,
		&saved.SenderEmail,
		&saved.AppPassword,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return settings.MailSettings{}, err
	}
	return saved, nil
}
