// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

func TestGetLedgerUseCase(t *testing.T) {
	may10 := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	may11 := time.Date(2024, time.May, 11, 9, 0, 0, 0, time.Local)
	may12 := time.Date(2024, time.May, 12, 15, 0, 0, 0, time.Local)

	income := incomeOn(may11, 120000)
	income.InvoiceNumber = "24050007"
	income.CustomerName = "Budi"

	transactionRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{income}}
	expenseRepo := &fakeExpenseRepository{expenses: []*entity.Expense{
		expenseOn(may10, "Tinta", 30000),
		expenseOn(may12, "Listrik", 45000),
	}}
	uc := NewGetLedgerUseCase(transactionRepo, expenseRepo)

	output, err := uc.Execute(context.Background(), GetLedgerInput{
		StartDate: may10,
		EndDate:   may12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(output.Entries))
	}

	t.Run("sorts newest first", func(t *testing.T) {
		for i := 1; i < len(output.Entries); i++ {
			if output.Entries[i].Date.After(output.Entries[i-1].Date) {
				t.Errorf("entries out of order at %d", i)
			}
		}
		if output.Entries[0].Description != "Listrik" {
			t.Errorf("newest entry = %q, want Listrik", output.Entries[0].Description)
		}
	})

	t.Run("labels income legs with the invoice", func(t *testing.T) {
		entry := output.Entries[1]
		if entry.Type != LedgerEntryIncome {
			t.Errorf("type = %s, want %s", entry.Type, LedgerEntryIncome)
		}
		if want := "Invoice 24050007 - Budi"; entry.Description != want {
			t.Errorf("description = %q, want %q", entry.Description, want)
		}
		if want := decimal.NewFromInt(120000); !entry.Amount.Equal(want) {
			t.Errorf("amount = %s, want %s", entry.Amount, want)
		}
	})

	t.Run("negates expense legs", func(t *testing.T) {
		entry := output.Entries[2]
		if entry.Type != LedgerEntryExpense {
			t.Errorf("type = %s, want %s", entry.Type, LedgerEntryExpense)
		}
		if want := decimal.NewFromInt(-30000); !entry.Amount.Equal(want) {
			t.Errorf("amount = %s, want %s", entry.Amount, want)
		}
	})
}

func TestGetCustomerSummaryUseCase(t *testing.T) {
	day := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)
	customer := entity.NewCustomer("Budi", "0812", "Jl. Merdeka")

	first := incomeOn(day, 120000)
	first.CustomerID = &customer.ID
	first.DownPayment = decimal.NewFromInt(50000)
	first.RemainingBalance = decimal.NewFromInt(70000)
	second := incomeOn(day, 80000)
	second.CustomerID = &customer.ID
	second.DownPayment = decimal.NewFromInt(80000)
	second.RemainingBalance = decimal.Zero
	unrelated := incomeOn(day, 999999)

	customerRepo := &fakeCustomerRepository{customers: []*entity.Customer{customer}}
	transactionRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{first, second, unrelated}}
	uc := NewGetCustomerSummaryUseCase(customerRepo, transactionRepo)

	t.Run("sums the customer's whole history", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetCustomerSummaryInput{CustomerID: customer.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.TransactionCount != 2 {
			t.Errorf("transaction count = %d, want 2", output.TransactionCount)
		}
		if want := decimal.NewFromInt(200000); !output.Total.Equal(want) {
			t.Errorf("total = %s, want %s", output.Total, want)
		}
		if want := decimal.NewFromInt(130000); !output.DownPayment.Equal(want) {
			t.Errorf("down payment = %s, want %s", output.DownPayment, want)
		}
		if want := decimal.NewFromInt(70000); !output.RemainingBalance.Equal(want) {
			t.Errorf("remaining balance = %s, want %s", output.RemainingBalance, want)
		}
	})

	t.Run("fails for an unknown customer", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetCustomerSummaryInput{CustomerID: entity.NewCustomer("X", "", "").ID})
		if err == nil {
			t.Fatal("expected an error for an unknown customer")
		}
	})
}
