package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/settings"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Save implements SettingsHandler.
func (h *SettingsHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq settings.SaveMailSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save mail settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save mail settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mail settings saved", resp)
}
