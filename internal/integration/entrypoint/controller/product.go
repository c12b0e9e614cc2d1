// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/usecase/product"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	listUseCase   *product.ListProductsUseCase
	lookupUseCase *product.LookupProductUseCase
	saveUseCase   *product.SaveProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	lookupUseCase *product.LookupProductUseCase,
	saveUseCase *product.SaveProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		lookupUseCase: lookupUseCase,
		saveUseCase:   saveUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Lookup handles GET /products/lookup requests. It resolves an exact product
// name to its catalog record for order-line pre-filling.
func (c *ProductController) Lookup(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Query parameter 'name' is required"})
		return
	}

	output, err := c.lookupUseCase.Execute(ctx.Request.Context(), product.LookupProductInput{Name: name})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.SaveProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), product.SaveProductInput{
		Name:      request.Name,
		CostPrice: decimal.NewFromFloat(request.CostPrice),
		SellPrice: decimal.NewFromFloat(request.SellPrice),
		Category:  request.Category,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid product ID"})
		return
	}

	var request dto.SaveProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), product.SaveProductInput{
		ID:        &id,
		Name:      request.Name,
		CostPrice: decimal.NewFromFloat(request.CostPrice),
		SellPrice: decimal.NewFromFloat(request.SellPrice),
		Category:  request.Category,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid product ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}
