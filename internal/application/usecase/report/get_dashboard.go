// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// GetDashboardOutput represents the headline figures shown on the main screen.
type GetDashboardOutput struct {
	TodayIncome       decimal.Decimal
	MonthIncome       decimal.Decimal
	OutstandingAmount decimal.Decimal
	TransactionCount  int
	StatusCounts      map[entity.TransactionStatus]int
}

// GetDashboardUseCase computes the landing-page summary in one pass over the
// transaction snapshot.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(transactionRepo adapter.TransactionRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute aggregates today's and this month's income, the unpaid total and
// the order counts per status.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	dayStart, dayEnd := DayBounds(now, now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	output := &GetDashboardOutput{
		TodayIncome:       decimal.Zero,
		MonthIncome:       decimal.Zero,
		OutstandingAmount: decimal.Zero,
		TransactionCount:  len(transactions),
		StatusCounts:      make(map[entity.TransactionStatus]int),
	}

	for _, t := range transactions {
		output.StatusCounts[t.Status]++
		if t.RemainingBalance.GreaterThan(decimal.Zero) {
			output.OutstandingAmount = output.OutstandingAmount.Add(t.RemainingBalance)
		}
		if !t.Date.Before(monthStart) && !t.Date.After(dayEnd) {
			output.MonthIncome = output.MonthIncome.Add(t.Total)
		}
		if !t.Date.Before(dayStart) && !t.Date.After(dayEnd) {
			output.TodayIncome = output.TodayIncome.Add(t.Total)
		}
	}

	return output, nil
}
