// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for profile replacement.
type UpdateProfileRequest struct {
	Name          string `json:"name" binding:"required"`
	Slogan        string `json:"slogan,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`
	BankAccount   string `json:"bankAccount,omitempty"`
	InvoiceFormat string `json:"invoiceFormat,omitempty"`
	Logo          string `json:"logo,omitempty"`
}

// ProfileResponse represents the company profile in API responses.
type ProfileResponse struct {
	Name          string `json:"name"`
	Slogan        string `json:"slogan"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BankAccount   string `json:"bankAccount"`
	InvoiceFormat string `json:"invoiceFormat"`
	Logo          string `json:"logo,omitempty"`
}

// ToProfileResponse converts a profile entity to its response form.
func ToProfileResponse(profile *entity.CompanyProfile) ProfileResponse {
	return ProfileResponse{
		Name:          profile.Name,
		Slogan:        profile.Slogan,
		Address:       profile.Address,
		City:          profile.City(),
		Phone:         profile.Phone,
		Email:         profile.Email,
		BankAccount:   profile.BankAccount,
		InvoiceFormat: profile.InvoiceFormat,
		Logo:          profile.Logo,
	}
}

// ToProfileEntity converts an update request to the domain entity.
func (r UpdateProfileRequest) ToProfileEntity() entity.CompanyProfile {
	return entity.CompanyProfile{
		Name:          r.Name,
		Slogan:        r.Slogan,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		BankAccount:   r.BankAccount,
		InvoiceFormat: r.InvoiceFormat,
		Logo:          r.Logo,
	}
}

// AddInvoiceFormatRequest represents the request body for registering a
// custom invoice format.
type AddInvoiceFormatRequest struct {
	Name string `json:"name" binding:"required"`
}

// InvoiceFormatsResponse represents the offered invoice formats.
type InvoiceFormatsResponse struct {
	Formats []string `json:"formats"`
}
