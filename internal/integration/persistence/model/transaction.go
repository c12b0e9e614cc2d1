// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceNumber    string          `gorm:"type:varchar(16);not null;index"`
	Date             time.Time       `gorm:"not null;index"`
	EstimasiSelesai  time.Time       `gorm:"not null"`
	CustomerID       *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName     string          `gorm:"type:varchar(255);not null"`
	CustomerAddress  string          `gorm:"type:text"`
	CustomerPhone    string          `gorm:"type:varchar(32)"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountValue    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DownPayment      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	// Loaded with Preload("Items"), ordered by position.
	Items []TransactionItemModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionItemModel represents the transaction_items table in the database.
// Position preserves the display and print order of the lines.
type TransactionItemModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"not null"`
	ProductID     *uuid.UUID      `gorm:"type:uuid"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Detail        string          `gorm:"type:text"`
	Bahan         string          `gorm:"type:varchar(255)"`
	Ukuran        string          `gorm:"type:varchar(64)"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the TransactionItemModel.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	items := make([]entity.TransactionItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = entity.TransactionItem{
			ID:        im.ID,
			ProductID: im.ProductID,
			Name:      im.Name,
			Detail:    im.Detail,
			Bahan:     im.Bahan,
			Ukuran:    im.Ukuran,
			Quantity:  im.Quantity,
			Price:     im.Price,
			Total:     im.Total,
		}
	}

	return &entity.Transaction{
		ID:               m.ID,
		InvoiceNumber:    m.InvoiceNumber,
		Date:             m.Date,
		EstimasiSelesai:  m.EstimasiSelesai,
		CustomerID:       m.CustomerID,
		CustomerName:     m.CustomerName,
		CustomerAddress:  m.CustomerAddress,
		CustomerPhone:    m.CustomerPhone,
		Items:            items,
		Subtotal:         m.Subtotal,
		DiscountValue:    m.DiscountValue,
		DiscountAmount:   m.DiscountAmount,
		TaxAmount:        m.TaxAmount,
		Total:            m.Total,
		DownPayment:      m.DownPayment,
		RemainingBalance: m.RemainingBalance,
		Status:           entity.TransactionStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	items := make([]TransactionItemModel, len(transaction.Items))
	for i, item := range transaction.Items {
		items[i] = TransactionItemModel{
			ID:            item.ID,
			TransactionID: transaction.ID,
			Position:      i,
			ProductID:     item.ProductID,
			Name:          item.Name,
			Detail:        item.Detail,
			Bahan:         item.Bahan,
			Ukuran:        item.Ukuran,
			Quantity:      item.Quantity,
			Price:         item.Price,
			Total:         item.Total,
		}
	}

	return &TransactionModel{
		ID:               transaction.ID,
		InvoiceNumber:    transaction.InvoiceNumber,
		Date:             transaction.Date,
		EstimasiSelesai:  transaction.EstimasiSelesai,
		CustomerID:       transaction.CustomerID,
		CustomerName:     transaction.CustomerName,
		CustomerAddress:  transaction.CustomerAddress,
		CustomerPhone:    transaction.CustomerPhone,
		Items:            items,
		Subtotal:         transaction.Subtotal,
		DiscountValue:    transaction.DiscountValue,
		DiscountAmount:   transaction.DiscountAmount,
		TaxAmount:        transaction.TaxAmount,
		Total:            transaction.Total,
		DownPayment:      transaction.DownPayment,
		RemainingBalance: transaction.RemainingBalance,
		Status:           string(transaction.Status),
		CreatedAt:        transaction.CreatedAt,
		UpdatedAt:        transaction.UpdatedAt,
	}
}
