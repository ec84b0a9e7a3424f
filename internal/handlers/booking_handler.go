package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
)

type BookingHandler struct {
	BaseHandler
	service services.BookingService
}

func NewBookingHandler(service services.BookingService, logger utils.Logger) *BookingHandler {
	return &BookingHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Create books the (email, id) query pair. Booking the same session twice
// for the same student is rejected by the unique index.
func (h *BookingHandler) Create(c *gin.Context) {
	h.LogRequest(c, "Booking session")

	var booking models.BookedSession
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}
	booking.Email = c.Query("email")
	booking.SessionID = c.Query("id")

	id, err := h.service.Create(c.Request.Context(), &booking)
	if err != nil {
		h.handleServiceError(c, err, "Already Booked")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// ListByEmail returns the sessions booked by the given student email.
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	h.LogRequest(c, "Listing booked sessions")

	bookings, err := h.service.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
