// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

func incomeOn(date time.Time, total int64) *entity.Transaction {
	tx := entity.NewTransaction("24050001", date, date)
	tx.CustomerName = "Budi"
	tx.Total = decimal.NewFromInt(total)
	return tx
}

func expenseOn(date time.Time, description string, amount int64) *entity.Expense {
	return entity.NewExpense(date, description, decimal.NewFromInt(amount), "Bahan Baku")
}

func TestDayBounds(t *testing.T) {
	start := time.Date(2024, time.May, 10, 14, 30, 0, 0, time.Local)
	end := time.Date(2024, time.May, 12, 8, 0, 0, 0, time.Local)

	s, e := DayBounds(start, end)

	if s.Hour() != 0 || s.Minute() != 0 || s.Second() != 0 || s.Nanosecond() != 0 {
		t.Errorf("start not widened to midnight: %v", s)
	}
	if e.Hour() != 23 || e.Minute() != 59 || e.Second() != 59 {
		t.Errorf("end not widened to end of day: %v", e)
	}
	if s.Day() != 10 || e.Day() != 12 {
		t.Errorf("day boundaries moved: %v .. %v", s, e)
	}
}

func TestGetCashflowUseCase(t *testing.T) {
	may10 := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	may11 := time.Date(2024, time.May, 11, 9, 0, 0, 0, time.Local)
	june1 := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)

	transactionRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
		incomeOn(may10, 120000),
		incomeOn(may11, 80000),
		incomeOn(june1, 999999),
	}}
	expenseRepo := &fakeExpenseRepository{expenses: []*entity.Expense{
		expenseOn(may10, "Tinta", 30000),
		expenseOn(june1, "Sewa", 500000),
	}}
	uc := NewGetCashflowUseCase(transactionRepo, expenseRepo)

	output, err := uc.Execute(context.Background(), GetCashflowInput{
		StartDate: may10,
		EndDate:   may11,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.NewFromInt(200000); !output.TotalIncome.Equal(want) {
		t.Errorf("total income = %s, want %s", output.TotalIncome, want)
	}
	if want := decimal.NewFromInt(30000); !output.TotalExpense.Equal(want) {
		t.Errorf("total expense = %s, want %s", output.TotalExpense, want)
	}
	if want := decimal.NewFromInt(170000); !output.Net.Equal(want) {
		t.Errorf("net = %s, want %s", output.Net, want)
	}
}

func TestGetCashflowUseCaseIncludesRangeEdges(t *testing.T) {
	lateEvening := time.Date(2024, time.May, 10, 23, 30, 0, 0, time.Local)
	transactionRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
		incomeOn(lateEvening, 50000),
	}}
	uc := NewGetCashflowUseCase(transactionRepo, &fakeExpenseRepository{})

	// Query the single day with a timestamp earlier than the transaction's.
	output, err := uc.Execute(context.Background(), GetCashflowInput{
		StartDate: time.Date(2024, time.May, 10, 8, 0, 0, 0, time.Local),
		EndDate:   time.Date(2024, time.May, 10, 8, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.NewFromInt(50000); !output.TotalIncome.Equal(want) {
		t.Errorf("total income = %s, want %s", output.TotalIncome, want)
	}
}
