// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	Admin       AdminResponse `json:"admin"`
}

// AdminResponse represents an admin account in API responses. The password
// hash never leaves the server.
type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToAdminResponse converts an admin entity to its response form.
func ToAdminResponse(admin *entity.Admin) AdminResponse {
	return AdminResponse{
		ID:        admin.ID.String(),
		Name:      admin.Name,
		Username:  admin.Username,
		Role:      string(admin.Role),
		Avatar:    admin.Avatar,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// SaveAdminRequest represents the request body for admin account creation or
// update. Password is required on create and optional on update, where an
// empty value keeps the stored one.
type SaveAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role" binding:"required,oneof=Administrator Owner Kasir"`
	Avatar   string `json:"avatar,omitempty"`
}
