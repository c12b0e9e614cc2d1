// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/application/usecase/transaction"
)

// TransactionItemRequest represents one order line in a transaction request.
type TransactionItemRequest struct {
	ProductID *string `json:"productId,omitempty"`
	Name      string  `json:"name" binding:"required"`
	Detail    string  `json:"detail,omitempty"`
	Bahan     string  `json:"bahan,omitempty"`
	Ukuran    string  `json:"ukuran,omitempty"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

// SaveTransactionRequest represents the request body for order creation or
// update. Item totals and the monetary roll-up are derived server side.
type SaveTransactionRequest struct {
	Date            string                   `json:"date" binding:"required"`
	EstimasiSelesai string                   `json:"estimasiSelesai" binding:"required"`
	CustomerID      *string                  `json:"customerId,omitempty"`
	CustomerName    string                   `json:"customerName" binding:"required"`
	CustomerAddress string                   `json:"customerAddress,omitempty"`
	CustomerPhone   string                   `json:"customerPhone,omitempty"`
	Items           []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountValue   float64                  `json:"discountValue,omitempty" binding:"omitempty,min=0"`
	TaxEnabled      bool                     `json:"taxEnabled,omitempty"`
	TaxAmount       float64                  `json:"taxAmount,omitempty" binding:"omitempty,min=0"`
	DownPayment     float64                  `json:"downPayment,omitempty" binding:"omitempty,min=0"`
	Status          string                   `json:"status" binding:"required"`
}

// AddPaymentRequest represents the request body for recording a payment.
type AddPaymentRequest struct {
	Amount    float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	PayInFull bool    `json:"payInFull,omitempty"`
}

// TransactionItemResponse represents one order line in API responses.
type TransactionItemResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Detail    string  `json:"detail"`
	Bahan     string  `json:"bahan"`
	Ukuran    string  `json:"ukuran"`
	Quantity  int     `json:"quantity"`
	Price     string  `json:"price"`
	Total     string  `json:"total"`
}

// TransactionResponse represents an order in API responses.
type TransactionResponse struct {
	ID               string                    `json:"id"`
	InvoiceNumber    string                    `json:"invoiceNumber"`
	Date             time.Time                 `json:"date"`
	EstimasiSelesai  time.Time                 `json:"estimasiSelesai"`
	CustomerID       *string                   `json:"customerId,omitempty"`
	CustomerName     string                    `json:"customerName"`
	CustomerAddress  string                    `json:"customerAddress"`
	CustomerPhone    string                    `json:"customerPhone"`
	Items            []TransactionItemResponse `json:"items"`
	Subtotal         string                    `json:"subtotal"`
	DiscountValue    string                    `json:"discountValue"`
	DiscountAmount   string                    `json:"discountAmount"`
	TaxAmount        string                    `json:"taxAmount"`
	Total            string                    `json:"total"`
	DownPayment      string                    `json:"downPayment"`
	RemainingBalance string                    `json:"remainingBalance"`
	Status           string                    `json:"status"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

// InvoiceNumberResponse represents the next invoice number preview.
type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// ToTransactionResponse converts a transaction output to its response form.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, item := range t.Items {
		var productID *string
		if item.ProductID != nil {
			id := item.ProductID.String()
			productID = &id
		}
		items[i] = TransactionItemResponse{
			ID:        item.ID.String(),
			ProductID: productID,
			Name:      item.Name,
			Detail:    item.Detail,
			Bahan:     item.Bahan,
			Ukuran:    item.Ukuran,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Total:     item.Total.String(),
		}
	}

	var customerID *string
	if t.CustomerID != nil {
		id := t.CustomerID.String()
		customerID = &id
	}

	return TransactionResponse{
		ID:               t.ID.String(),
		InvoiceNumber:    t.InvoiceNumber,
		Date:             t.Date,
		EstimasiSelesai:  t.EstimasiSelesai,
		CustomerID:       customerID,
		CustomerName:     t.CustomerName,
		CustomerAddress:  t.CustomerAddress,
		CustomerPhone:    t.CustomerPhone,
		Items:            items,
		Subtotal:         t.Subtotal.String(),
		DiscountValue:    t.DiscountValue.String(),
		DiscountAmount:   t.DiscountAmount.String(),
		TaxAmount:        t.TaxAmount.String(),
		Total:            t.Total.String(),
		DownPayment:      t.DownPayment.String(),
		RemainingBalance: t.RemainingBalance.String(),
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToTransactionListResponse converts transaction outputs to their response form.
func ToTransactionListResponse(transactions []*transaction.TransactionOutput) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}
