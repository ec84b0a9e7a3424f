package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/auth"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	BaseHandler
	tokens    *auth.TokenManager
	validator *validator.Validator
}

func NewAuthHandler(tokens *auth.TokenManager, validator *validator.Validator, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		tokens:      tokens,
		validator:   validator,
	}
}

// IssueToken signs a bearer token for the posted email.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	h.LogRequest(c, "Issuing access token")

	var req validator.TokenRequest
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

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		h.LogError(c, err, "Failed to sign token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
