package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/auth"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	admin      config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{admin: admin, jwtService: jwtService}
}

// Login implements auth.AuthService. The credential check is a bcrypt
// comparison against the configured operator hash; a wrong username and a
// wrong password produce the same error.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateSessionToken(req.Username, true)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token:     token,
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(tokenID)
	return nil
}
