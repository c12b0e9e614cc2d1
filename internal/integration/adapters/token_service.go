// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// CustomClaims represents the custom claims for JWT access tokens.
type CustomClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface. The system is
// single-shift and local, so there is no refresh token: one access token
// covers a working day.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateAccessToken issues a signed access token for the admin.
func (s *tokenService) GenerateAccessToken(admin *entity.Admin) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Role:     string(admin.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies a token, returning its claims.
func (s *tokenService) ValidateAccessToken(token string) (*adapter.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*CustomClaims)
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.TokenClaims{
		AdminID:  adminID,
		Username: claims.Username,
		Role:     entity.AdminRole(claims.Role),
	}, nil
}
