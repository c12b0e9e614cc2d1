// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"time"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// ListExpensesInput represents the optional date filter for expense listing.
type ListExpensesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves expenses sorted by date, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var (
		expenses []*entity.Expense
		err      error
	)

	if input.StartDate != nil && input.EndDate != nil {
		expenses, err = uc.expenseRepo.FindByDateRange(ctx, *input.StartDate, *input.EndDate)
	} else {
		expenses, err = uc.expenseRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
