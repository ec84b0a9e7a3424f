package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type MaterialHandler struct {
	BaseHandler
	service services.MaterialService
}

func NewMaterialHandler(service services.MaterialService, logger utils.Logger) *MaterialHandler {
	return &MaterialHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Create stores material for the (email, id) query pair. A second upload
// for the same pair is rejected by the unique index.
func (h *MaterialHandler) Create(c *gin.Context) {
	h.LogRequest(c, "Creating material")

	var req validator.MaterialCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	id, err := h.service.Create(c.Request.Context(), c.Query("email"), c.Query("id"), &req)
	if err != nil {
		h.handleServiceError(c, err, "Card Already exist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GetByID returns a single material by its own id.
func (h *MaterialHandler) GetByID(c *gin.Context) {
	h.LogRequest(c, "Getting material")

	material, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, material)
}

// GetBySessionID returns the material attached to the given session.
func (h *MaterialHandler) GetBySessionID(c *gin.Context) {
	h.LogRequest(c, "Getting material by session")

	material, err := h.service.GetBySessionID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, material)
}

// ListByEmail returns the materials uploaded by the given tutor email.
func (h *MaterialHandler) ListByEmail(c *gin.Context) {
	h.LogRequest(c, "Listing materials by owner")

	materials, err := h.service.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, materials)
}

// ListAll returns every material.
func (h *MaterialHandler) ListAll(c *gin.Context) {
	h.LogRequest(c, "Listing all materials")

	materials, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, materials)
}

// Update replaces the doc and image of the material with the given id.
func (h *MaterialHandler) Update(c *gin.Context) {
	h.LogRequest(c, "Updating material")

	var req validator.MaterialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	modified, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// Delete removes the material with the given id.
func (h *MaterialHandler) Delete(c *gin.Context) {
	h.LogRequest(c, "Deleting material")

	deleted, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
