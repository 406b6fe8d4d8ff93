package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateSessionToken issues a token for an authenticated operator.
	GenerateSessionToken(username string, admin bool) (token string, expiresAt int64, err error)
	ValidateSessionToken(tokenString string) (username string, admin bool, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(tokenID string)
	IsTokenRevoked(tokenID string) bool
}

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func NewJWTService(secretKey string, sessionExpirationTime string) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(username string, admin bool) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":      uuid.NewString(),
		"username": username,
		"is_admin": admin,
		"type":     "session",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateSessionToken(tokenString string) (username string, admin bool, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", false, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "session" {
		return "", false, jwt.ErrInvalidJWT()
	}

	if j.IsTokenRevoked(token.JwtID()) {
		return "", false, jwt.ErrInvalidJWT()
	}

	usernameVal, ok := token.Get("username")
	if !ok {
		return "", false, jwt.ErrInvalidJWT()
	}
	username, ok = usernameVal.(string)
	if !ok {
		return "", false, jwt.ErrInvalidJWT()
	}

	adminVal, _ := token.Get("is_admin")
	admin, _ = adminVal.(bool)

	return username, admin, nil
}

func (j *JWTService) RevokeToken(tokenID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[tokenID] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[tokenID]
	return revoked
}
