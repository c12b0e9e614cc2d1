// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole represents the access level of a back-office account.
type AdminRole string

const (
	AdminRoleAdministrator AdminRole = "Administrator"
	AdminRoleOwner         AdminRole = "Owner"
	AdminRoleKasir         AdminRole = "Kasir"
)

// IsValid reports whether the role is one of the known roles.
func (r AdminRole) IsValid() bool {
	switch r {
	case AdminRoleAdministrator, AdminRoleOwner, AdminRoleKasir:
		return true
	}
	return false
}

// Admin represents a back-office user account.
type Admin struct {
	ID           uuid.UUID
	Name         string
	Username     string
	PasswordHash string
	Role         AdminRole
	Avatar       string // data URL or empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAdmin creates a new Admin entity. The password hash is produced by the
// application layer before the entity reaches persistence.
func NewAdmin(name, username, passwordHash string, role AdminRole, avatar string) *Admin {
	now := time.Now().UTC()

	return &Admin{
		ID:           uuid.New(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		Avatar:       avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
