package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
)

type ReviewHandler struct {
	BaseHandler
	service services.ReviewService
}

func NewReviewHandler(service services.ReviewService, logger utils.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Create appends a review.
func (h *ReviewHandler) Create(c *gin.Context) {
	h.LogRequest(c, "Creating review")

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	id, err := h.service.Create(c.Request.Context(), &review)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// ListAll returns every review.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	h.LogRequest(c, "Listing reviews")

	reviews, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
