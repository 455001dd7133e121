package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvpay/backend/internal/application/usecase/backup"
	"github.com/resolvpay/backend/internal/integration/entrypoint/dto"
)

// BackupController handles export and import endpoints.
type BackupController struct {
	exportJSONUseCase *backup.ExportJSONUseCase
	exportCSVUseCase  *backup.ExportCSVUseCase
	importJSONUseCase *backup.ImportJSONUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportJSONUseCase *backup.ExportJSONUseCase,
	exportCSVUseCase *backup.ExportCSVUseCase,
	importJSONUseCase *backup.ImportJSONUseCase,
) *BackupController {
	return &BackupController{
		exportJSONUseCase: exportJSONUseCase,
		exportCSVUseCase:  exportCSVUseCase,
		importJSONUseCase: importJSONUseCase,
	}
}

// ExportJSON handles GET /export/json requests. The payload is the
// canonical backup format accepted by the import endpoint.
func (c *BackupController) ExportJSON(ctx *gin.Context) {
	output, err := c.exportJSONUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ExportResponse{
		Payload: output.Payload,
		Count:   output.Count,
	})
}

// ExportCSV handles GET /export/csv requests. The body is the CSV text
// itself, served as an attachment.
func (c *BackupController) ExportCSV(ctx *gin.Context) {
	output, err := c.exportCSVUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export bills",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="bills.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(output.Payload))
}

// ImportJSON handles POST /import/json requests.
func (c *BackupController) ImportJSON(ctx *gin.Context) {
	var req dto.ImportJSONRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.importJSONUseCase.Execute(ctx.Request.Context(), backup.ImportJSONInput{
		Payload: req.Payload,
	})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportJSONResponse{Imported: output.Imported})
}
