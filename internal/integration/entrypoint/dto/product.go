// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SaveProductRequest represents the request body for product creation or update.
type SaveProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	CostPrice float64 `json:"costPrice" binding:"min=0"`
	SellPrice float64 `json:"sellPrice" binding:"min=0"`
	Category  string  `json:"category,omitempty" binding:"omitempty,oneof=Percetakan Sablon Konfeksi"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CostPrice string    `json:"costPrice"`
	SellPrice string    `json:"sellPrice"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToProductResponse converts a product entity to its response form.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		CostPrice: product.CostPrice.String(),
		SellPrice: product.SellPrice.String(),
		Category:  product.Category,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ToProductListResponse converts product entities to their response form.
func ToProductListResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}
