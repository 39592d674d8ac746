package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/application/ingest"
)

// DatasetHandler handles dataset listing and deletion
type DatasetHandler struct {
	BaseHandler
	datasetService *ingest.DatasetService
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(datasetService *ingest.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// ListDatasets returns all datasets of the current user with row counts
func (h *DatasetHandler) ListDatasets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summaries, err := h.datasetService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summaries)
}

// ListRecords returns every record in a dataset
func (h *DatasetHandler) ListRecords(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	records, err := h.datasetService.Records(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// DeleteDataset removes a dataset and all of its records
func (h *DatasetHandler) DeleteDataset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.datasetService.DeleteDataset(c.Request.Context(), userID, c.Param("name")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteRecord removes a single record by ID
func (h *DatasetHandler) DeleteRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.datasetService.DeleteRecord(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers dataset routes
func (h *DatasetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	datasets := rg.Group("/datasets")
	{
		datasets.GET("", h.ListDatasets)
		datasets.GET("/:name/records", h.ListRecords)
		datasets.DELETE("/:name", h.DeleteDataset)
	}
	rg.DELETE("/records/:id", h.DeleteRecord)
}
