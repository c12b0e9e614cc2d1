// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product categories. CategoryPercetakan is the general bucket products fall
// into when nothing more specific applies.
const (
	CategoryPercetakan = "Percetakan"
	CategorySablon     = "Sablon"
	CategoryKonfeksi   = "Konfeksi"
)

// Product represents a catalog item used as a pricing template when composing
// an order line. Edits to a product never change existing transaction items
// (snapshot semantics).
type Product struct {
	ID        uuid.UUID
	Name      string
	CostPrice decimal.Decimal
	SellPrice decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates a new Product entity. An empty category defaults to the
// general printing bucket.
func NewProduct(name string, costPrice, sellPrice decimal.Decimal, category string) *Product {
	if category == "" {
		category = CategoryPercetakan
	}
	now := time.Now().UTC()

	return &Product{
		ID:        uuid.New(),
		Name:      name,
		CostPrice: costPrice,
		SellPrice: sellPrice,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
