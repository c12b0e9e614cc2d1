// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SingletonRowID is the fixed primary key of single-row settings tables.
const SingletonRowID = 1

// CompanyProfileModel represents the company_profile table: a single row
// holding the business identity printed on invoices.
type CompanyProfileModel struct {
	ID            int       `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(255)"`
	Slogan        string    `gorm:"type:varchar(255)"`
	Address       string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(32)"`
	Email         string    `gorm:"type:varchar(255)"`
	BankAccount   string    `gorm:"type:text"`
	InvoiceFormat string    `gorm:"type:varchar(64)"`
	Logo          string    `gorm:"type:text"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompanyProfileModel.
func (CompanyProfileModel) TableName() string {
	return "company_profile"
}

// ToEntity converts a CompanyProfileModel to a domain CompanyProfile entity.
func (m *CompanyProfileModel) ToEntity() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		Name:          m.Name,
		Slogan:        m.Slogan,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		BankAccount:   m.BankAccount,
		InvoiceFormat: m.InvoiceFormat,
		Logo:          m.Logo,
	}
}

// CompanyProfileFromEntity creates a CompanyProfileModel from a domain entity.
func CompanyProfileFromEntity(profile *entity.CompanyProfile) *CompanyProfileModel {
	return &CompanyProfileModel{
		ID:            SingletonRowID,
		Name:          profile.Name,
		Slogan:        profile.Slogan,
		Address:       profile.Address,
		Phone:         profile.Phone,
		Email:         profile.Email,
		BankAccount:   profile.BankAccount,
		InvoiceFormat: profile.InvoiceFormat,
		Logo:          profile.Logo,
		UpdatedAt:     time.Now().UTC(),
	}
}

// InvoiceFormatModel represents the invoice_formats table: one row per custom
// format name, ordered by position.
type InvoiceFormatModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName returns the table name for the InvoiceFormatModel.
func (InvoiceFormatModel) TableName() string {
	return "invoice_formats"
}

// DataVersionModel represents the data_version table: a single row carrying
// the schema data version marker used to gate startup migrations.
type DataVersionModel struct {
	ID        int       `gorm:"primaryKey"`
	Version   int       `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DataVersionModel.
func (DataVersionModel) TableName() string {
	return "data_version"
}
