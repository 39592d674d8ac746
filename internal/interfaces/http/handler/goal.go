package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/application/goal"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// GoalHandler handles sales goal CRUD endpoints
type GoalHandler struct {
	BaseHandler
	goalService *goal.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *goal.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// Create adds a new goal
func (h *GoalHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req goal.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	created, err := h.goalService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// List returns all goals with live progress against current sales data
func (h *GoalHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, goals)
}

// Update modifies a goal's title, target or deadline
func (h *GoalHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req goal.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	updated, err := h.goalService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// Delete removes a goal
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.goalService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers goal routes
func (h *GoalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	goals := rg.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.PUT("/:id", h.Update)
		goals.DELETE("/:id", h.Delete)
	}
}
