package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type UserHandler struct {
	BaseHandler
	service   services.UserService
	validator *validator.Validator
}

func NewUserHandler(service services.UserService, validator *validator.Validator, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   validator,
	}
}

// GetRole returns the role stored for the given email.
func (h *UserHandler) GetRole(c *gin.Context) {
	h.LogRequest(c, "Getting user role")

	role, err := h.service.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// List returns all users, optionally narrowed by a case-insensitive search
// over name or email.
func (h *UserHandler) List(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	users, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, users)
}

// Register stores a new user. Registration is idempotent by email: an
// email the store already knows is acknowledged without a second insert.
func (h *UserHandler) Register(c *gin.Context) {
	h.LogRequest(c, "Registering user")

	var req validator.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}
	if email := c.Query("email"); email != "" {
		req.Email = email
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateRole changes the role of the user with the given id.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	h.LogRequest(c, "Updating user role")

	var req validator.UserRoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	modified, err := h.service.UpdateRole(c.Request.Context(), c.Param("id"), models.UserRole(req.Role))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// Delete removes the user with the given id.
func (h *UserHandler) Delete(c *gin.Context) {
	h.LogRequest(c, "Deleting user")

	deleted, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
