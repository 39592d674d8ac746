package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/application/share"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// ShareHandler handles share link management and public shared views
type ShareHandler struct {
	BaseHandler
	shareService *share.ShareService
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(shareService *share.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// Create issues a new share link for a dataset
func (h *ShareHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req share.CreateShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	link, err := h.shareService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, link)
}

// List returns all share links of the current user
func (h *ShareHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	links, err := h.shareService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, links)
}

// Toggle flips a share link between active and disabled
func (h *ShareHandler) Toggle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	link, err := h.shareService.Toggle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, link)
}

// Delete removes a share link
func (h *ShareHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.shareService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ResolveShared serves the read-only dashboard behind a share token.
// This endpoint is public and must not leak whether a token is unknown
// or merely disabled.
func (h *ShareHandler) ResolveShared(c *gin.Context) {
	view, err := h.shareService.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// RegisterRoutes registers authenticated share link routes
func (h *ShareHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shares := rg.Group("/shares")
	{
		shares.POST("", h.Create)
		shares.GET("", h.List)
		shares.PATCH("/:id/toggle", h.Toggle)
		shares.DELETE("/:id", h.Delete)
	}
}
