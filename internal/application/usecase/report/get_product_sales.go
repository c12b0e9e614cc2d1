// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// GetProductSalesInput represents the inclusive date range for the per-product report.
type GetProductSalesInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// ProductSalesRow represents one product line in the sales report, grouped by
// the item name captured on the order, not by catalog id.
type ProductSalesRow struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// GetProductSalesOutput represents the output of the per-product report.
type GetProductSalesOutput struct {
	Rows []ProductSalesRow
}

// GetProductSalesUseCase groups sold items by name over a date range.
type GetProductSalesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetProductSalesUseCase creates a new GetProductSalesUseCase instance.
func NewGetProductSalesUseCase(transactionRepo adapter.TransactionRepository) *GetProductSalesUseCase {
	return &GetProductSalesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute sums quantity and total per item name, sorted by total descending.
func (uc *GetProductSalesUseCase) Execute(ctx context.Context, input GetProductSalesInput) (*GetProductSalesOutput, error) {
	start, end := DayBounds(input.StartDate, input.EndDate)

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*ProductSalesRow)
	order := make([]string, 0)
	for _, t := range transactions {
		for _, item := range t.Items {
			row, ok := grouped[item.Name]
			if !ok {
				row = &ProductSalesRow{Name: item.Name, Total: decimal.Zero}
				grouped[item.Name] = row
				order = append(order, item.Name)
			}
			row.Quantity += item.Quantity
			row.Total = row.Total.Add(item.Total)
		}
	}

	rows := make([]ProductSalesRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, *grouped[name])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})

	return &GetProductSalesOutput{Rows: rows}, nil
}
