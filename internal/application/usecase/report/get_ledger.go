// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// Ledger entry kinds.
const (
	LedgerEntryIncome  = "income"
	LedgerEntryExpense = "expense"
)

// GetLedgerInput represents the inclusive date range for the ledger report.
type GetLedgerInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// LedgerEntry is one leg of the merged ledger. Income amounts are positive,
// expense amounts negative.
type LedgerEntry struct {
	Date        time.Time
	Type        string
	Description string
	Amount      decimal.Decimal
}

// GetLedgerOutput represents the output of the ledger report.
type GetLedgerOutput struct {
	Entries []LedgerEntry
}

// GetLedgerUseCase merges income and expense legs into one chronological view.
type GetLedgerUseCase struct {
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
	}
}

// Execute builds the merged ledger sorted by date, newest first.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	start, end := DayBounds(input.StartDate, input.EndDate)

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := make([]LedgerEntry, 0, len(transactions)+len(expenses))
	for _, t := range transactions {
		entries = append(entries, LedgerEntry{
			Date:        t.Date,
			Type:        LedgerEntryIncome,
			Description: "Invoice " + t.InvoiceNumber + " - " + t.CustomerName,
			Amount:      t.Total,
		})
	}
	for _, e := range expenses {
		entries = append(entries, LedgerEntry{
			Date:        e.Date,
			Type:        LedgerEntryExpense,
			Description: e.Description,
			Amount:      e.Amount.Neg(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return &GetLedgerOutput{Entries: entries}, nil
}
