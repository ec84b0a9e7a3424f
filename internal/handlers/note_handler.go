package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type NoteHandler struct {
	BaseHandler
	service services.NoteService
}

func NewNoteHandler(service services.NoteService, logger utils.Logger) *NoteHandler {
	return &NoteHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *NoteHandler) bindNote(c *gin.Context) (*validator.NoteRequest, bool) {
	var req validator.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return nil, false
	}
	return &req, true
}

// Create stores a new study note.
func (h *NoteHandler) Create(c *gin.Context) {
	h.LogRequest(c, "Creating note")

	req, ok := h.bindNote(c)
	if !ok {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// ListByEmail returns the notes owned by the given email.
func (h *NoteHandler) ListByEmail(c *gin.Context) {
	h.LogRequest(c, "Listing notes")

	notes, err := h.service.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// GetByID returns a single note, or a null body when nothing matches.
func (h *NoteHandler) GetByID(c *gin.Context) {
	h.LogRequest(c, "Getting note")

	note, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, note)
}

// Update replaces the note's fields with the posted document.
func (h *NoteHandler) Update(c *gin.Context) {
	h.LogRequest(c, "Updating note")

	req, ok := h.bindNote(c)
	if !ok {
		return
	}

	modified, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// Delete removes the note with the given id.
func (h *NoteHandler) Delete(c *gin.Context) {
	h.LogRequest(c, "Deleting note")

	deleted, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
