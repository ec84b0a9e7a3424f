package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type SessionHandler struct {
	BaseHandler
	service services.SessionService
}

func NewSessionHandler(service services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Create stores a new tutor session. Status defaults to pending.
func (h *SessionHandler) Create(c *gin.Context) {
	h.LogRequest(c, "Creating session")

	var req validator.SessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// ListPublic returns one page of approved sessions. page and limit must be
// integers; range checks happen in the service before any store call.
func (h *SessionHandler) ListPublic(c *gin.Context) {
	h.LogRequest(c, "Listing public sessions")

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid pagination parameters",
			Details: "page must be an integer",
		})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid pagination parameters",
			Details: "limit must be an integer",
		})
		return
	}

	sessions, err := h.service.ListPublic(c.Request.Context(), services.SessionListQuery{
		Page:   page,
		Limit:  limit,
		SortBy: c.Query("sortBy"),
	})
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// ListAll returns every session regardless of status.
func (h *SessionHandler) ListAll(c *gin.Context) {
	h.LogRequest(c, "Listing all sessions")

	sessions, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetByID returns a single session, or a null body when nothing matches.
func (h *SessionHandler) GetByID(c *gin.Context) {
	h.LogRequest(c, "Getting session")

	session, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListByTutor returns the sessions created by the given tutor email.
func (h *SessionHandler) ListByTutor(c *gin.Context) {
	h.LogRequest(c, "Listing tutor sessions")

	sessions, err := h.service.ListByTutor(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CountSuccess returns the number of approved sessions.
func (h *SessionHandler) CountSuccess(c *gin.Context) {
	h.LogRequest(c, "Counting approved sessions")

	count, err := h.service.CountSuccess(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Update patches status, price, or feedback on the session with the given
// id. Missing ids upsert, mirroring the store's update semantics.
func (h *SessionHandler) Update(c *gin.Context) {
	h.LogRequest(c, "Updating session")

	var req validator.SessionUpdateRequest
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
