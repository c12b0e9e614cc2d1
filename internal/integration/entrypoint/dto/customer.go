// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SaveCustomerRequest represents the request body for customer creation or update.
type SaveCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCustomerResponse converts a customer entity to its response form.
func ToCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Phone:     customer.Phone,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// ToCustomerListResponse converts customer entities to their response form.
func ToCustomerListResponse(customers []*entity.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = ToCustomerResponse(c)
	}
	return responses
}
