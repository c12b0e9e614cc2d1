// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// AdminIDKey is the context key for the authenticated admin's ID.
	AdminIDKey ContextKey = "admin_id"
	// AdminUsernameKey is the context key for the authenticated admin's username.
	AdminUsernameKey ContextKey = "admin_username"
	// AdminRoleKey is the context key for the authenticated admin's role.
	AdminRoleKey ContextKey = "admin_role"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(AdminIDKey), claims.AdminID)
		c.Set(string(AdminUsernameKey), claims.Username)
		c.Set(string(AdminRoleKey), claims.Role)

		c.Next()
	}
}

// GetAdminIDFromContext extracts the admin ID from the Gin context.
func GetAdminIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(string(AdminIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := adminID.(uuid.UUID)
	return id, ok
}

// GetAdminUsernameFromContext extracts the admin username from the Gin context.
func GetAdminUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(string(AdminUsernameKey))
	if !exists {
		return "", false
	}
	usernameStr, ok := username.(string)
	return usernameStr, ok
}

// GetAdminRoleFromContext extracts the admin role from the Gin context.
func GetAdminRoleFromContext(c *gin.Context) (entity.AdminRole, bool) {
	role, exists := c.Get(string(AdminRoleKey))
	if !exists {
		return "", false
	}
	roleValue, ok := role.(entity.AdminRole)
	return roleValue, ok
}
