// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a repeat customer in the master data.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer creates a new Customer entity.
func NewCustomer(name, phone, address string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
