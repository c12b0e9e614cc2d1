// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SaveExpenseInput represents the input for expense creation or update.
// A nil ID creates a new record.
type SaveExpenseInput struct {
	ID          *uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

// SaveExpenseOutput represents the output of expense creation or update.
type SaveExpenseOutput struct {
	Expense *entity.Expense
}

// SaveExpenseUseCase handles expense upsert logic.
type SaveExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSaveExpenseUseCase creates a new SaveExpenseUseCase instance.
func NewSaveExpenseUseCase(expenseRepo adapter.ExpenseRepository) *SaveExpenseUseCase {
	return &SaveExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute creates or updates an expense entry.
func (uc *SaveExpenseUseCase) Execute(ctx context.Context, input SaveExpenseInput) (*SaveExpenseOutput, error) {
	var expense *entity.Expense
	if input.ID == nil {
		expense = entity.NewExpense(input.Date, input.Description, input.Amount, input.Category)
	} else {
		existing, err := uc.expenseRepo.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existing.Date = input.Date
		existing.Description = input.Description
		existing.Amount = input.Amount
		existing.Category = input.Category
		existing.UpdatedAt = time.Now().UTC()
		expense = existing
	}

	if err := uc.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	return &SaveExpenseOutput{Expense: expense}, nil
}
