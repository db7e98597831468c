package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/favourop/portfolio-backend/config"
	"github.com/favourop/portfolio-backend/internal/auth"
	"github.com/favourop/portfolio-backend/internal/auth/session"
)

// AuthService handles credential login for the session gate variant. The
// admin identity comes from configuration; there is no user table.
type AuthService struct {
	cfg      config.AuthConfig
	sessions *session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig, sessions *session.Store) *AuthService {
	return &AuthService{cfg: cfg, sessions: sessions}
}

// Login checks the credentials against the configured admin user and
// issues a session token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *auth.Principal, error) {
	if email == "" || password == "" || s.cfg.AdminEmail == "" || s.cfg.AdminPasswordHash == "" {
		return "", nil, auth.ErrUnauthenticated
	}
	if email != s.cfg.AdminEmail {
		return "", nil, auth.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", nil, auth.ErrUnauthenticated
	}

	principal := &auth.Principal{
		ID:    "admin",
		Email: email,
		Name:  "Admin User",
		Role:  "admin",
	}
	token, err := s.sessions.Create(ctx, principal)
	if err != nil {
		return "", nil, err
	}
	return token, principal, nil
}

// Logout revokes the session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
