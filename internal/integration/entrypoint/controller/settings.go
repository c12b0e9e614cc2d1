// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/percetakan-pos/backend/internal/application/usecase/settings"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles company profile and invoice format endpoints.
type SettingsController struct {
	getProfileUseCase    *settings.GetProfileUseCase
	updateProfileUseCase *settings.UpdateProfileUseCase
	listFormatsUseCase   *settings.ListInvoiceFormatsUseCase
	addFormatUseCase     *settings.AddInvoiceFormatUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getProfileUseCase *settings.GetProfileUseCase,
	updateProfileUseCase *settings.UpdateProfileUseCase,
	listFormatsUseCase *settings.ListInvoiceFormatsUseCase,
	addFormatUseCase *settings.AddInvoiceFormatUseCase,
) *SettingsController {
	return &SettingsController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
		listFormatsUseCase:   listFormatsUseCase,
		addFormatUseCase:     addFormatUseCase,
	}
}

// GetProfile handles GET /settings/profile requests.
func (c *SettingsController) GetProfile(ctx *gin.Context) {
	output, err := c.getProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// UpdateProfile handles PUT /settings/profile requests.
func (c *SettingsController) UpdateProfile(ctx *gin.Context) {
	var request dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), settings.UpdateProfileInput{
		Profile: request.ToProfileEntity(),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// ListInvoiceFormats handles GET /settings/invoice-formats requests.
func (c *SettingsController) ListInvoiceFormats(ctx *gin.Context) {
	output, err := c.listFormatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InvoiceFormatsResponse{Formats: output.Formats})
}

// AddInvoiceFormat handles POST /settings/invoice-formats requests.
func (c *SettingsController) AddInvoiceFormat(ctx *gin.Context) {
	var request dto.AddInvoiceFormatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addFormatUseCase.Execute(ctx.Request.Context(), settings.AddInvoiceFormatInput{
		Name: request.Name,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InvoiceFormatsResponse{Formats: output.Formats})
}
