package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/application/ingest"
	"github.com/salespulse/backend/internal/interfaces/http/dto"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// IngestHandler handles CSV uploads, manual records and sample data
type IngestHandler struct {
	BaseHandler
	ingestService *ingest.IngestService
}

// NewIngestHandler creates a new IngestHandler
func NewIngestHandler(ingestService *ingest.IngestService) *IngestHandler {
	return &IngestHandler{ingestService: ingestService}
}

// UploadCSV imports a CSV file as the named dataset. Uploading under an
// existing name replaces that dataset once the whole file validates.
func (h *IngestHandler) UploadCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	datasetName := c.PostForm("dataset_name")
	if datasetName == "" {
		datasetName = c.Query("dataset_name")
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeIngestFailed, "file must be a CSV file")
		return
	}

	result, err := h.ingestService.ImportCSV(c.Request.Context(), userID, datasetName, file, header.Size)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// AddRecord appends a single manually entered record to a dataset
func (h *IngestHandler) AddRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ingest.AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.ingestService.AddRecord(c.Request.Context(), userID, c.Param("name"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, record)
}

// GenerateSample replaces the named dataset with generated demo data
func (h *IngestHandler) GenerateSample(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.ingestService.GenerateSample(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// RegisterRoutes registers ingestion routes
func (h *IngestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.UploadCSV)
	datasets := rg.Group("/datasets")
	{
		datasets.POST("/:name/records", h.AddRecord)
		datasets.POST("/:name/sample", h.GenerateSample)
	}
}
