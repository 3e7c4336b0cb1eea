package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dezporcento/tipshare-backend-go/internal/config"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/auth"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/jwt"
)

// AuthService authenticates the single admin account.
type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type AuthServiceImpl struct {
	cfg    config.AuthConfig
	jwtSvc jwt.Service
}

func NewAuthService(cfg config.AuthConfig, jwtSvc jwt.Service) AuthService {
	return &AuthServiceImpl{
		cfg:    cfg,
		jwtSvc: jwtSvc,
	}
}

func (s *AuthServiceImpl) Login(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if !strings.EqualFold(req.Email, s.cfg.AdminEmail) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(s.cfg.AdminEmail)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
