package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salespulse/backend/internal/domain/shared"
	"github.com/salespulse/backend/internal/infrastructure/aiclient"
	"github.com/salespulse/backend/internal/infrastructure/csvingest"
	"github.com/salespulse/backend/internal/interfaces/http/dto"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return ""
}

// getUserID extracts the authenticated user ID from JWT claims
func getUserID(c *gin.Context) (string, error) {
	userID := middleware.GetJWTUserID(c)
	if userID == "" {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts service errors to HTTP responses. Domain errors
// carry their own codes; ingestion and AI provider failures map to
// dedicated API codes; anything else is reported as internal.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	var rowErr csvingest.RowError
	if errors.As(err, &rowErr) {
		h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeIngestFailed, err.Error())
		return
	}

	switch {
	case errors.Is(err, csvingest.ErrFileTooLarge):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodePayloadTooBig, err.Error())
	case errors.Is(err, csvingest.ErrEmptyFile),
		errors.Is(err, csvingest.ErrMissingHeader),
		errors.Is(err, csvingest.ErrNoDataRows),
		errors.Is(err, csvingest.ErrInvalidEncoding):
		h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeIngestFailed, err.Error())
	case errors.Is(err, aiclient.ErrRateLimited):
		h.Error(c, http.StatusTooManyRequests, dto.ErrCodeAIRateLimited, "AI provider rate limit exceeded, try again later")
	case errors.Is(err, aiclient.ErrCreditsExhausted):
		h.Error(c, http.StatusPaymentRequired, dto.ErrCodeAICreditsExhausted, "AI provider credits exhausted")
	case errors.Is(err, aiclient.ErrEmptyResponse):
		h.Error(c, http.StatusBadGateway, dto.ErrCodeAIUnavailable, "AI provider returned an empty response")
	default:
		h.InternalError(c, "An unexpected error occurred")
	}
}
