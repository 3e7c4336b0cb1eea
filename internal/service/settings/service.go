package settings

import (
	"context"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/settings"
)

const tableName = "mail_settings"

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
	auditSvc     audit.AuditService
}

func NewSettingsService(settingsRepo settings.SettingsRepository, auditSvc audit.AuditService) settings.SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		auditSvc:     auditSvc,
	}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.MailSettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.MailSettingsResponse{}, err
	}
	if current == nil {
		return settings.MailSettingsResponse{}, settings.ErrNotConfigured
	}
	return settings.ToResponse(*current), nil
}

func (s *SettingsServiceImpl) Save(ctx context.Context, req settings.SaveMailSettingsRequest) (settings.MailSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.MailSettingsResponse{}, err
	}

	saved, err := s.settingsRepo.Save(ctx, settings.MailSettings{
		RecipientEmail: req.RecipientEmail,
		SenderEmail:    req.SenderEmail,
		AppPassword:    req.AppPassword,
	})
	if err != nil {
		return settings.MailSettingsResponse{}, err
	}

	resp := settings.ToResponse(saved)
	s.auditSvc.Record(ctx, audit.ActionUpdate, tableName, &saved.ID, nil, resp)
	return resp, nil
}
