package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	"github.com/workforce-analytics/workforce-backend-go/internal/domain/auth"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-sessions"

func newTestAuthService(t *testing.T, password string) (auth.AuthService, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, "1h")
	svc := NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}, jwtService)
	return svc, jwtService
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, jwtService := newTestAuthService(t, "correct horse battery staple")

	resp, err := svc.Login(ctx, &auth.LoginRequest{
		Username: "admin",
		Password: "correct horse battery staple",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	username, admin, err := jwtService.ValidateSessionToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.True(t, admin)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestAuthService(t, "right")

	_, err := svc.Login(ctx, &auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_WrongUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestAuthService(t, "right")

	_, err := svc.Login(ctx, &auth.LoginRequest{Username: "root", Password: "right"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestAuthService(t, "right")

	_, err := svc.Login(ctx, &auth.LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, jwtService := newTestAuthService(t, "pw")

	resp, err := svc.Login(ctx, &auth.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token.JwtID()))

	_, _, err = jwtService.ValidateSessionToken(resp.Token)
	assert.Error(t, err)
}
