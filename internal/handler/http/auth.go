package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/auth"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
	authservice "github.com/dezporcento/tipshare-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService authservice.AuthService
}

func NewAuthHandler(authService authservice.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", resp)
}
