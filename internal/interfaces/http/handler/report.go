package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/application/report"
	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// ReportHandler handles AI report generation and retrieval
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate runs AI analysis over a filtered dataset view and stores the result
func (h *ReportHandler) Generate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req report.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := analytics.FilterState{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Category: req.Category,
		Product:  req.Product,
	}

	result, err := h.reportService.Generate(c.Request.Context(), userID, c.Param("name"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns all stored reports of the current user, newest first
func (h *ReportHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reports, err := h.reportService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reports)
}

// Get returns a single stored report by ID
func (h *ReportHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.reportService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a stored report
func (h *ReportHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/datasets/:name/reports", h.Generate)
	reports := rg.Group("/reports")
	{
		reports.GET("", h.List)
		reports.GET("/:id", h.Get)
		reports.DELETE("/:id", h.Delete)
	}
}
