// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// AdminModel represents the admins table in the database.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null"`
	Avatar       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the AdminModel.
func (AdminModel) TableName() string {
	return "admins"
}

// ToEntity converts an AdminModel to a domain Admin entity.
func (m *AdminModel) ToEntity() *entity.Admin {
	return &entity.Admin{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.AdminRole(m.Role),
		Avatar:       m.Avatar,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AdminFromEntity creates an AdminModel from a domain Admin entity.
func AdminFromEntity(admin *entity.Admin) *AdminModel {
	return &AdminModel{
		ID:           admin.ID,
		Name:         admin.Name,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		Role:         string(admin.Role),
		Avatar:       admin.Avatar,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}
