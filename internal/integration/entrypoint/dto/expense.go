// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SaveExpenseRequest represents the request body for expense creation or update.
type SaveExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category,omitempty"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToExpenseResponse converts an expense entity to its response form.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Date:        expense.Date,
		Description: expense.Description,
		Amount:      expense.Amount.String(),
		Category:    expense.Category,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts expense entities to their response form.
func ToExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}
