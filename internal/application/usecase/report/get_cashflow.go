// Package report contains financial aggregation use cases. Every report is a
// pure recompute over the stored snapshot; nothing is cached incrementally.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// GetCashflowInput represents the inclusive date range for the cashflow report.
type GetCashflowInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetCashflowOutput represents the output of the cashflow report.
type GetCashflowOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// GetCashflowUseCase aggregates income against expenses over a date range.
type GetCashflowUseCase struct {
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
}

// NewGetCashflowUseCase creates a new GetCashflowUseCase instance.
func NewGetCashflowUseCase(
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetCashflowUseCase {
	return &GetCashflowUseCase{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
	}
}

// Execute sums transaction totals and expense amounts whose date falls within
// [start 00:00:00, end 23:59:59].
func (uc *GetCashflowUseCase) Execute(ctx context.Context, input GetCashflowInput) (*GetCashflowOutput, error) {
	start, end := DayBounds(input.StartDate, input.EndDate)

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	for _, t := range transactions {
		totalIncome = totalIncome.Add(t.Total)
	}
	totalExpense := decimal.Zero
	for _, e := range expenses {
		totalExpense = totalExpense.Add(e.Amount)
	}

	return &GetCashflowOutput{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Net:          totalIncome.Sub(totalExpense),
	}, nil
}

// DayBounds widens a date pair to full local days: start at 00:00:00 and end
// at 23:59:59.999999999.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	return s, e
}
