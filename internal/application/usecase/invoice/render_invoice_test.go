// Package invoice contains the printable invoice document use case.
package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// Fakes embed the interface and override only what rendering touches.

type fakeTransactionRepository struct {
	adapter.TransactionRepository
	transaction *entity.Transaction
}

func (f fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if f.transaction == nil || f.transaction.ID != id {
		return nil, domainerror.ErrTransactionNotFound
	}
	return f.transaction, nil
}

type fakeSettingsRepository struct {
	adapter.SettingsRepository
	profile entity.CompanyProfile
}

func (f fakeSettingsRepository) GetCompanyProfile(_ context.Context) (*entity.CompanyProfile, error) {
	profile := f.profile
	return &profile, nil
}

func printableOrder() *entity.Transaction {
	tx := entity.NewTransaction("24060021", time.Now(), time.Now().AddDate(0, 0, 2))
	tx.CustomerName = "Budi"
	tx.Items = []entity.TransactionItem{
		{Name: "Spanduk", Ukuran: "2x1", Quantity: 1, Price: decimal.NewFromInt(25000)},
		{Name: "Stiker", Quantity: 5, Price: decimal.NewFromInt(20000)},
	}
	tx.Recalculate()
	return tx
}

func TestRenderInvoiceUseCase(t *testing.T) {
	profile := entity.CompanyProfile{
		Name:        "Zahra Grafika",
		Address:     "Jl. Merdeka No. 1, Bandung, Indonesia",
		BankAccount: "BCA 123456 a.n. Zahra",
	}

	t.Run("assembles a padded, frozen document", func(t *testing.T) {
		tx := printableOrder()
		uc := NewRenderInvoiceUseCase(
			fakeTransactionRepository{transaction: tx},
			fakeSettingsRepository{profile: profile},
		)

		output, err := uc.Execute(context.Background(), RenderInvoiceInput{
			TransactionID: tx.ID,
			IssuedBy:      "siti",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		document := output.Document

		if document.OrderNumber != "0021" {
			t.Errorf("order number = %q, want %q", document.OrderNumber, "0021")
		}
		if len(document.Rows) != MinRows {
			t.Errorf("got %d rows, want %d", len(document.Rows), MinRows)
		}
		if document.Rows[0].Blank || !document.Rows[2].Blank {
			t.Error("padding rows misplaced")
		}
		if document.Company.City != "Bandung" {
			t.Errorf("city = %q, want Bandung", document.Company.City)
		}
		if document.IssuedBy != "siti" {
			t.Errorf("issued by = %q", document.IssuedBy)
		}

		// Mutating the source order afterwards must not reach the document.
		tx.Items[0].Name = "changed"
		if document.Rows[0].Name != "Spanduk" {
			t.Error("document rows alias the live order")
		}
	})

	t.Run("keeps all rows when the order exceeds the minimum", func(t *testing.T) {
		tx := printableOrder()
		items := make([]entity.TransactionItem, 0, MinRows+2)
		for i := 0; i < MinRows+2; i++ {
			items = append(items, entity.TransactionItem{Name: "Stiker", Quantity: 1, Price: decimal.NewFromInt(1000)})
		}
		tx.Items = items
		tx.Recalculate()

		uc := NewRenderInvoiceUseCase(
			fakeTransactionRepository{transaction: tx},
			fakeSettingsRepository{profile: profile},
		)

		output, err := uc.Execute(context.Background(), RenderInvoiceInput{TransactionID: tx.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Document.Rows) != MinRows+2 {
			t.Errorf("got %d rows, want %d", len(output.Document.Rows), MinRows+2)
		}
	})

	t.Run("rejects a concurrent render", func(t *testing.T) {
		tx := printableOrder()
		uc := NewRenderInvoiceUseCase(
			fakeTransactionRepository{transaction: tx},
			fakeSettingsRepository{profile: profile},
		)

		uc.inFlight.Lock()
		defer uc.inFlight.Unlock()

		_, err := uc.Execute(context.Background(), RenderInvoiceInput{TransactionID: tx.ID})
		if !errors.Is(err, domainerror.ErrRenderInProgress) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrRenderInProgress)
		}
	})

	t.Run("fails for an unknown transaction", func(t *testing.T) {
		uc := NewRenderInvoiceUseCase(
			fakeTransactionRepository{},
			fakeSettingsRepository{profile: profile},
		)

		_, err := uc.Execute(context.Background(), RenderInvoiceInput{TransactionID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrTransactionNotFound)
		}
	})
}
