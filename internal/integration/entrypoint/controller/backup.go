// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/percetakan-pos/backend/internal/application/usecase/backup"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// maxBackupBodyBytes caps the restore upload. Backups carry base64 logos and
// avatars, so the limit is generous.
const maxBackupBodyBytes = 32 << 20 // 32 MB

// BackupController handles snapshot export and restore endpoints.
type BackupController struct {
	exportUseCase  *backup.ExportBackupUseCase
	restoreUseCase *backup.RestoreBackupUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportBackupUseCase,
	restoreUseCase *backup.RestoreBackupUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase:  exportUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Export handles GET /backup requests.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="pos-backup.json"`)
	ctx.JSON(http.StatusOK, output.Document)
}

// Restore handles POST /backup requests. The body is the raw backup
// document; validation happens before anything is overwritten.
func (c *BackupController) Restore(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxBackupBodyBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read request body"})
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), backup.RestoreBackupInput{
		Document: body,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Backup restored",
		"restoredKeys": output.RestoredKeys,
	})
}
