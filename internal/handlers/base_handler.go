package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
)

// ErrorResponse is the failure body: an HTTP status plus a free-text
// message, optionally with details.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse wraps operation results that are not plain documents.
type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler carries the shared logging helpers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Debug(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err.Error())
	utils.FromContext(c, h.logger).Error(msg, args...)
}

// handleServiceError maps service errors to HTTP status codes. conflictMsg
// is the resource-specific message returned on ErrAlreadyExists.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error, conflictMsg string) {
	switch {
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: conflictMsg,
		})
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
