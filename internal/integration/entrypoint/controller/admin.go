// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/usecase/admin"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// AdminController handles back-office account endpoints.
type AdminController struct {
	listUseCase   *admin.ListAdminsUseCase
	saveUseCase   *admin.SaveAdminUseCase
	deleteUseCase *admin.DeleteAdminUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	listUseCase *admin.ListAdminsUseCase,
	saveUseCase *admin.SaveAdminUseCase,
	deleteUseCase *admin.DeleteAdminUseCase,
) *AdminController {
	return &AdminController{
		listUseCase:   listUseCase,
		saveUseCase:   saveUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /admins requests.
func (c *AdminController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	responses := make([]dto.AdminResponse, len(output.Admins))
	for i, a := range output.Admins {
		responses[i] = dto.ToAdminResponse(a)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Create handles POST /admins requests.
func (c *AdminController) Create(ctx *gin.Context) {
	var request dto.SaveAdminRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}
	if request.Password == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Password is required"})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), admin.SaveAdminInput{
		Name:     request.Name,
		Username: request.Username,
		Password: request.Password,
		Role:     entity.AdminRole(request.Role),
		Avatar:   request.Avatar,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdminResponse(output.Admin))
}

// Update handles PUT /admins/:id requests. An empty password keeps the
// stored one.
func (c *AdminController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid admin ID"})
		return
	}

	var request dto.SaveAdminRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), admin.SaveAdminInput{
		ID:       &id,
		Name:     request.Name,
		Username: request.Username,
		Password: request.Password,
		Role:     entity.AdminRole(request.Role),
		Avatar:   request.Avatar,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminResponse(output.Admin))
}

// Delete handles DELETE /admins/:id requests.
func (c *AdminController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid admin ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), admin.DeleteAdminInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Admin deleted"})
}
