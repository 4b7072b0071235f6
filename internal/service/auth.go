package service

import (
	"fmt"
	"log/slog"

	"atelier/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest carries the submitted admin password.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthService gates the admin surface with one shared secret. This is a
// UX gate, not a security boundary: the check is exact string equality,
// there is no server-side session and no token; the client keeps its own
// advisory "authenticated" flag.
type AuthService struct {
	password string
	logger   *slog.Logger
}

// NewAuthService creates a new auth service with the configured secret.
func NewAuthService(password string, logger *slog.Logger) *AuthService {
	return &AuthService{
		password: password,
		logger:   logger,
	}
}

// Login validates the request and checks the password. The error message
// never reveals how close a candidate was.
func (s *AuthService) Login(req *LoginRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Password, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !s.Verify(req.Password) {
		s.logger.Warn("admin login rejected")
		return fmt.Errorf("%w: invalid password", domain.ErrUnauthorized)
	}
	s.logger.Info("admin login accepted")
	return nil
}

// Verify reports whether candidate matches the configured secret
// exactly. Case matters; there is no hashing, rate limiting or lockout.
func (s *AuthService) Verify(candidate string) bool {
	return candidate == s.password
}
