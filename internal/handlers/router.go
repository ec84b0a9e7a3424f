package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/auth"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type HandlerManager struct {
	authHandler     *AuthHandler
	userHandler     *UserHandler
	sessionHandler  *SessionHandler
	materialHandler *MaterialHandler
	noteHandler     *NoteHandler
	bookingHandler  *BookingHandler
	reviewHandler   *ReviewHandler
	paymentHandler  *PaymentHandler
	authMiddleware  *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) *HandlerManager {
	return &HandlerManager{
		authHandler:     NewAuthHandler(tokens, validator, logger),
		userHandler:     NewUserHandler(serviceManager.User(), validator, logger),
		sessionHandler:  NewSessionHandler(serviceManager.Session(), logger),
		materialHandler: NewMaterialHandler(serviceManager.Material(), logger),
		noteHandler:     NewNoteHandler(serviceManager.Note(), logger),
		bookingHandler:  NewBookingHandler(serviceManager.Booking(), logger),
		reviewHandler:   NewReviewHandler(serviceManager.Review(), logger),
		paymentHandler:  NewPaymentHandler(serviceManager.Payment(), validator, logger),
		authMiddleware:  NewJWTAuthMiddleware(tokens, userRepo),
	}
}

// SetupRoutes registers every route. Paths are flat under the root; guards
// stack the auth middleware with a role check on the protected routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	authed := hm.authMiddleware.AuthMiddleware()
	tutorOnly := hm.authMiddleware.RequireRole(models.RoleTutor)
	adminOnly := hm.authMiddleware.RequireRole(models.RoleAdmin)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Go to Study please!!!!")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "learn-hub-server",
		})
	})

	router.POST("/jwt", hm.authHandler.IssueToken)

	// Users
	router.GET("/user/:email", hm.userHandler.GetRole)
	router.GET("/users", hm.userHandler.List)
	router.POST("/users", hm.userHandler.Register)
	router.PATCH("/users/:id", authed, adminOnly, hm.userHandler.UpdateRole)
	router.DELETE("/users/:id", authed, adminOnly, hm.userHandler.Delete)

	// Sessions
	router.POST("/session", hm.sessionHandler.Create)
	router.GET("/session", hm.sessionHandler.ListPublic)
	router.GET("/sessionAdmin", authed, adminOnly, hm.sessionHandler.ListAll)
	router.GET("/session/:id", hm.sessionHandler.GetByID)
	router.GET("/personalSession/:email", authed, tutorOnly, hm.sessionHandler.ListByTutor)
	router.GET("/sessionCount", hm.sessionHandler.CountSuccess)
	router.PATCH("/session/:id", hm.sessionHandler.Update)
	router.PATCH("/sessionReq/:id", authed, adminOnly, hm.sessionHandler.Update)

	// Materials
	router.POST("/materials", authed, tutorOnly, hm.materialHandler.Create)
	router.GET("/material/:id", hm.materialHandler.GetByID)
	router.GET("/allMaterial", authed, adminOnly, hm.materialHandler.ListAll)
	router.GET("/materialStudent/:id", hm.materialHandler.GetBySessionID)
	router.GET("/materialItems/:email", hm.materialHandler.ListByEmail)
	router.PATCH("/materials/:id", authed, tutorOnly, hm.materialHandler.Update)
	router.DELETE("/materials/:id", authed, tutorOnly, hm.materialHandler.Delete)
	router.DELETE("/AdminMaterials/:id", authed, adminOnly, hm.materialHandler.Delete)

	// Notes
	router.POST("/notes", hm.noteHandler.Create)
	router.GET("/notes/:email", hm.noteHandler.ListByEmail)
	router.GET("/note/:id", hm.noteHandler.GetByID)
	router.PATCH("/notes/:id", hm.noteHandler.Update)
	router.DELETE("/notes/:id", hm.noteHandler.Delete)

	// Bookings
	router.POST("/bookedSession", hm.bookingHandler.Create)
	router.GET("/bookedSession/:email", hm.bookingHandler.ListByEmail)

	// Reviews
	router.POST("/reviews", hm.reviewHandler.Create)
	router.GET("/reviews", hm.reviewHandler.ListAll)

	// Payments
	router.POST("/create-payment-intent", hm.paymentHandler.CreateIntent)
	router.POST("/sessionPayments", hm.paymentHandler.Record)
	router.GET("/payment", hm.paymentHandler.ListAll)
	router.GET("/total-revenue", authed, adminOnly, hm.paymentHandler.TotalRevenue)
	router.GET("/total-revenue-by-month", authed, adminOnly, hm.paymentHandler.RevenueByMonth)
}
