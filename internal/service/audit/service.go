package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/go-chi/jwtauth/v5"
)

const defaultListLimit = 100

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{
		auditRepo: auditRepo,
	}
}

// getActor extracts the authenticated e-mail from JWT claims; writes made
// outside a request (cron) fall back to "system".
func getActor(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "system"
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "system"
	}
	return email
}

// Record persists one audit entry. It never fails the caller: a broken
// audit trail should not block the actual change, so errors are logged
// and swallowed.
func (s *AuditServiceImpl) Record(ctx context.Context, action audit.Action, tableName string, recordID *string, oldData, newData any) {
	entry := audit.Entry{
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		Actor:     getActor(ctx),
	}

	if ip, ok := audit.SourceIPFromContext(ctx); ok {
		entry.SourceIP = &ip
	}

	if oldData != nil {
		raw, err := json.Marshal(oldData)
		if err == nil {
			entry.OldData = raw
		}
	}
	if newData != nil {
		raw, err := json.Marshal(newData)
		if err == nil {
			entry.NewData = raw
		}
	}

	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		slog.Error("Failed to write audit entry",
			"action", action,
			"table", tableName,
			"error", err,
		)
	}
}

func (s *AuditServiceImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.EntryResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.ToResponse(e))
	}
	return responses, nil
}

// Clear wipes the audit trail, then records that it was wiped.
func (s *AuditServiceImpl) Clear(ctx context.Context) error {
	if err := s.auditRepo.DeleteAll(ctx); err != nil {
		return err
	}
	s.Record(ctx, audit.ActionClearLogs, "audit_logs", nil, nil, nil)
	return nil
}
