package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type PaymentHandler struct {
	BaseHandler
	service   services.PaymentService
	validator *validator.Validator
}

func NewPaymentHandler(service services.PaymentService, validator *validator.Validator, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   validator,
	}
}

// CreateIntent requests a card payment intent for the posted price and
// returns its client secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	h.LogRequest(c, "Creating payment intent")

	var req validator.PaymentIntentRequest
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

	clientSecret, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// Record appends a completed payment to the ledger.
func (h *PaymentHandler) Record(c *gin.Context) {
	h.LogRequest(c, "Recording payment")

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	id, err := h.service.Record(c.Request.Context(), &payment)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// ListAll returns the full payment ledger.
func (h *PaymentHandler) ListAll(c *gin.Context) {
	h.LogRequest(c, "Listing payments")

	payments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// TotalRevenue returns the sum of all ledger prices.
func (h *PaymentHandler) TotalRevenue(c *gin.Context) {
	h.LogRequest(c, "Computing total revenue")

	total, err := h.service.TotalRevenue(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// RevenueByMonth returns per-month revenue sums in chronological order.
func (h *PaymentHandler) RevenueByMonth(c *gin.Context) {
	h.LogRequest(c, "Computing monthly revenue")

	months, err := h.service.RevenueByMonth(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, months)
}
