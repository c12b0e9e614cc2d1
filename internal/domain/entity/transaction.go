// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/valueobject"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// TransactionStatus represents the fulfilment status of an order.
// The string values are the stored wire format, kept compatible with
// pre-existing backups.
type TransactionStatus string

const (
	TransactionStatusNew        TransactionStatus = "Order Baru"
	TransactionStatusInProgress TransactionStatus = "Dalam Proses"
	TransactionStatusDone       TransactionStatus = "Selesai"
	TransactionStatusPickedUp   TransactionStatus = "Sudah Diambil"
)

// IsValid reports whether the status is one of the known states.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusNew, TransactionStatusInProgress, TransactionStatusDone, TransactionStatusPickedUp:
		return true
	}
	return false
}

// TransactionItem represents a single order line.
// Total is derived from the size multiplier, quantity and unit price; it is
// never authoritative on its own.
type TransactionItem struct {
	ID        uuid.UUID
	ProductID *uuid.UUID // nil for free-text items
	Name      string
	Detail    string
	Bahan     string // material
	Ukuran    string // free-text size, e.g. "2x1.5"
	Quantity  int
	Price     decimal.Decimal
	Total     decimal.Decimal
}

// Transaction is the order aggregate root.
//
// Customer fields are a snapshot taken at capture time: later edits to the
// customer record never propagate back into stored transactions.
type Transaction struct {
	ID               uuid.UUID
	InvoiceNumber    string
	Date             time.Time
	EstimasiSelesai  time.Time
	CustomerID       *uuid.UUID // nil for walk-in customers
	CustomerName     string
	CustomerAddress  string
	CustomerPhone    string
	Items            []TransactionItem
	Subtotal         decimal.Decimal
	DiscountValue    decimal.Decimal
	DiscountAmount   decimal.Decimal
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
	DownPayment      decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           TransactionStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransaction creates a new Transaction entity with a fresh identity.
// Monetary fields are derived by Recalculate, which the caller is expected to
// invoke after filling in items and adjustments.
func NewTransaction(invoiceNumber string, date, estimasiSelesai time.Time) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:              uuid.New(),
		InvoiceNumber:   invoiceNumber,
		Date:            date,
		EstimasiSelesai: estimasiSelesai,
		Status:          TransactionStatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Recalculate derives every monetary field from the current inputs:
// item totals, subtotal, flat discount, grand total and remaining balance.
// The fields are always recomputed together; none of them is persisted
// without passing through here first. Calling it twice with unchanged inputs
// is a no-op.
func (t *Transaction) Recalculate() {
	subtotal := decimal.Zero
	for i := range t.Items {
		item := &t.Items[i]
		qty := decimal.NewFromInt(int64(item.Quantity))
		item.Total = valueobject.SizeMultiplier(item.Ukuran).Mul(qty).Mul(item.Price)
		subtotal = subtotal.Add(item.Total)
	}

	t.Subtotal = subtotal
	t.DiscountAmount = t.DiscountValue
	t.Total = subtotal.Sub(t.DiscountAmount).Add(t.TaxAmount)
	t.RemainingBalance = t.Total.Sub(t.DownPayment)
}

// ApplyStatus records the operator's status selection. Full payment always
// wins over the manual choice: once the remaining balance reaches zero the
// order is forced to "Sudah Diambil" no matter what was selected.
func (t *Transaction) ApplyStatus(selected TransactionStatus) {
	if t.RemainingBalance.LessThanOrEqual(decimal.Zero) {
		t.Status = TransactionStatusPickedUp
		return
	}
	t.Status = selected
}

// AddPayment increases the cumulative down payment. A payment that would push
// the total paid past the invoice total is rejected without changing state.
func (t *Transaction) AddPayment(amount decimal.Decimal) error {
	newDownPayment := t.DownPayment.Add(amount)
	if newDownPayment.GreaterThan(t.Total) {
		return domainerror.ErrPaymentExceedsTotal
	}
	t.DownPayment = newDownPayment
	t.RemainingBalance = t.Total.Sub(newDownPayment)
	return nil
}

// PayInFull settles the order: down payment equals the total, the remaining
// balance is zero and the status moves to "Sudah Diambil" unconditionally.
func (t *Transaction) PayInFull() {
	t.DownPayment = t.Total
	t.RemainingBalance = decimal.Zero
	t.Status = TransactionStatusPickedUp
}

// IsPaid reports whether nothing remains to be collected.
func (t *Transaction) IsPaid() bool {
	return t.RemainingBalance.LessThanOrEqual(decimal.Zero)
}

// Snapshot returns a deep copy safe to hand to an external renderer while the
// original keeps being edited.
func (t *Transaction) Snapshot() *Transaction {
	clone := *t
	clone.Items = make([]TransactionItem, len(t.Items))
	copy(clone.Items, t.Items)
	if t.CustomerID != nil {
		id := *t.CustomerID
		clone.CustomerID = &id
	}
	for i := range clone.Items {
		if clone.Items[i].ProductID != nil {
			id := *clone.Items[i].ProductID
			clone.Items[i].ProductID = &id
		}
	}
	return &clone
}
