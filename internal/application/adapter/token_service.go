// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// TokenClaims carries the identity embedded in an access token.
type TokenClaims struct {
	AdminID  uuid.UUID
	Username string
	Role     entity.AdminRole
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the admin.
	GenerateAccessToken(admin *entity.Admin) (string, error)

	// ValidateAccessToken parses and verifies a token, returning its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
