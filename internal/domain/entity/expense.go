// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is an independent outgoing ledger leg. It has no relation to any
// transaction.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(date time.Time, description string, amount decimal.Decimal, category string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
