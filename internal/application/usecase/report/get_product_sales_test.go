// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

func TestGetProductSalesUseCase(t *testing.T) {
	day := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.Local)

	first := entity.NewTransaction("24050001", day, day)
	first.Items = []entity.TransactionItem{
		{Name: "Spanduk", Quantity: 2, Total: decimal.NewFromInt(50000)},
		{Name: "Stiker", Quantity: 10, Total: decimal.NewFromInt(20000)},
	}
	second := entity.NewTransaction("24050002", day, day)
	second.Items = []entity.TransactionItem{
		{Name: "Spanduk", Quantity: 1, Total: decimal.NewFromInt(25000)},
		{Name: "Kaos Sablon", Quantity: 3, Total: decimal.NewFromInt(180000)},
	}

	repo := &fakeTransactionRepository{transactions: []*entity.Transaction{first, second}}
	uc := NewGetProductSalesUseCase(repo)

	output, err := uc.Execute(context.Background(), GetProductSalesInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(output.Rows))
	}

	t.Run("groups items by name", func(t *testing.T) {
		var spanduk *ProductSalesRow
		for i := range output.Rows {
			if output.Rows[i].Name == "Spanduk" {
				spanduk = &output.Rows[i]
			}
		}
		if spanduk == nil {
			t.Fatal("missing Spanduk row")
		}
		if spanduk.Quantity != 3 {
			t.Errorf("quantity = %d, want 3", spanduk.Quantity)
		}
		if want := decimal.NewFromInt(75000); !spanduk.Total.Equal(want) {
			t.Errorf("total = %s, want %s", spanduk.Total, want)
		}
	})

	t.Run("sorts by total descending", func(t *testing.T) {
		if output.Rows[0].Name != "Kaos Sablon" {
			t.Errorf("first row = %s, want Kaos Sablon", output.Rows[0].Name)
		}
		for i := 1; i < len(output.Rows); i++ {
			if output.Rows[i].Total.GreaterThan(output.Rows[i-1].Total) {
				t.Errorf("rows out of order at %d: %s > %s", i, output.Rows[i].Total, output.Rows[i-1].Total)
			}
		}
	})
}
