// internal/handlers/export.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/miaucode/licencias-backend/internal/services"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// GET /export/:recurso
func (h *ExportHandler) Export(c *gin.Context) {
	recurso := c.Param("recurso")

	f, err := h.exportService.Build(recurso)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("%s_%s.xlsx", recurso, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; log and drop the connection.
		logrus.WithError(err).Error("Failed to stream export")
	}
}
