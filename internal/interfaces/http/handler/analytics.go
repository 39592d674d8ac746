package handler

import (
	"github.com/gin-gonic/gin"

	analyticsapp "github.com/salespulse/backend/internal/application/analytics"
	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// AnalyticsHandler handles dashboard, filter options and comparison endpoints
type AnalyticsHandler struct {
	BaseHandler
	dashboardService *analyticsapp.DashboardService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(dashboardService *analyticsapp.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{dashboardService: dashboardService}
}

// GetDashboard computes every dashboard panel for a dataset, narrowed by
// the filter passed in query parameters.
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
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

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context(), userID, c.Param("name"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// GetFilterOptions returns the distinct categories, products and date
// range of a dataset for populating filter controls.
func (h *AnalyticsHandler) GetFilterOptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	options, err := h.dashboardService.FilterOptions(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, options)
}

// Compare evaluates two record sets side by side: two filtered views of
// the route dataset, or another dataset named per side
func (h *AnalyticsHandler) Compare(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req analyticsapp.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	comparison, err := h.dashboardService.Compare(c.Request.Context(), userID, c.Param("name"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, comparison)
}

// RegisterRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	datasets := rg.Group("/datasets")
	{
		datasets.GET("/:name/dashboard", h.GetDashboard)
		datasets.GET("/:name/filters", h.GetFilterOptions)
		datasets.POST("/:name/compare", h.Compare)
	}
}
