package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/application/export"
	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// ExportHandler handles CSV downloads and summary table exports
type ExportHandler struct {
	BaseHandler
	exportService *export.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *export.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// DownloadCSV streams the filtered records of a dataset as a CSV attachment
func (h *ExportHandler) DownloadCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter analytics.FilterState
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	datasetName := c.Param("name")

	// Build the full document before touching the response so failures
	// still produce a JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := h.exportService.WriteRecordsCSV(c.Request.Context(), userID, datasetName, filter, &buf); err != nil {
		h.HandleError(c, err)
		return
	}

	filename := export.FileName(datasetName, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetSummaryTables returns aggregated tables suitable for report exports
func (h *ExportHandler) GetSummaryTables(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter analytics.FilterState
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tables, err := h.exportService.BuildSummaryTables(c.Request.Context(), userID, c.Param("name"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tables)
}

// RegisterRoutes registers export routes
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	datasets := rg.Group("/datasets")
	{
		datasets.GET("/:name/export/csv", h.DownloadCSV)
		datasets.GET("/:name/export/summary", h.GetSummaryTables)
	}
}
