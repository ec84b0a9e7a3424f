package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/auth"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

const userEmailContextKey = "user_email"

// JWTAuthMiddleware verifies bearer tokens and checks caller roles against
// the users collection.
type JWTAuthMiddleware struct {
	tokens   *auth.TokenManager
	userRepo repositories.UserRepository
}

func NewJWTAuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// AuthMiddleware extracts and verifies the bearer token and stores the
// caller's email in the context.
func (am *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := am.tokens.Verify(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: fmt.Sprintf("invalid token: %v", err),
			})
			c.Abort()
			return
		}

		c.Set(userEmailContextKey, claims.Email)
		c.Next()
	}
}

// RequireRole checks the authenticated caller's user record against the
// required roles. Both the Tutor and Admin guards key the lookup by the
// caller's own email; Admin passes every role check.
func (am *JWTAuthMiddleware) RequireRole(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "caller identity not found in context",
			})
			c.Abort()
			return
		}

		user, err := am.userRepo.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: "failed to look up caller",
				Details: err.Error(),
			})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "forbidden access",
			})
			c.Abort()
			return
		}

		for _, required := range requiredRoles {
			if user.Role == required || user.Role == models.RoleAdmin {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "forbidden access",
		})
		c.Abort()
	}
}

// GetUserEmail extracts the authenticated caller's email from the context.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailContextKey)
}
