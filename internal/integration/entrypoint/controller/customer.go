// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/usecase/customer"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// CustomerController handles customer master-data endpoints.
type CustomerController struct {
	listUseCase   *customer.ListCustomersUseCase
	saveUseCase   *customer.SaveCustomerUseCase
	deleteUseCase *customer.DeleteCustomerUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(
	listUseCase *customer.ListCustomersUseCase,
	saveUseCase *customer.SaveCustomerUseCase,
	deleteUseCase *customer.DeleteCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		listUseCase:   listUseCase,
		saveUseCase:   saveUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /customers requests.
func (c *CustomerController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(output.Customers))
}

// Create handles POST /customers requests.
func (c *CustomerController) Create(ctx *gin.Context) {
	var request dto.SaveCustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), customer.SaveCustomerInput{
		Name:    request.Name,
		Phone:   request.Phone,
		Address: request.Address,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(output.Customer))
}

// Update handles PUT /customers/:id requests.
func (c *CustomerController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	var request dto.SaveCustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), customer.SaveCustomerInput{
		ID:      &id,
		Name:    request.Name,
		Phone:   request.Phone,
		Address: request.Address,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// Delete handles DELETE /customers/:id requests.
func (c *CustomerController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), customer.DeleteCustomerInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Customer deleted"})
}
