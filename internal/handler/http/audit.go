package http

import (
	"log/slog"
	"net/http"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &AuditHandlerImpl{auditService: auditService}
}

// List implements AuditHandler.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := audit.ListFilter{
		TableName: r.URL.Query().Get("table_name"),
		Action:    r.URL.Query().Get("action"),
		Limit:     queryLimit(r),
	}

	resp, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Clear implements AuditHandler.
func (h *AuditHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.auditService.Clear(r.Context()); err != nil {
		slog.Error("Clear audit log service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Audit log cleared", nil)
}
