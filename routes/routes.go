package routes

import (
	"time"

	"github.com/yihao03/Aistronaut/handlers"
	"github.com/yihao03/Aistronaut/middleware"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.AuthMiddleware())
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterChatRoutes registers the conversation and booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.AuthMiddleware())

		api.POST("/conversations", hb.StartConversationHandler)
		api.GET("/conversations", hb.ListConversationsHandler)
		api.GET("/conversations/current", hb.CurrentConversationHandler)
		api.GET("/conversations/:id", hb.GetConversationHandler)
		api.DELETE("/conversations/:id", hb.DeleteConversationHandler)
		api.POST("/conversations/:id/current", hb.SwitchConversationHandler)

		api.POST("/conversations/:id/messages", hb.SendMessageHandler)
		api.POST("/conversations/:id/retry", hb.RetryMessageHandler)
		api.POST("/conversations/:id/select/flight", hb.SelectFlightHandler)
		api.POST("/conversations/:id/select/trip", hb.SelectTripHandler)
		api.POST("/conversations/:id/select/accommodation", hb.SelectAccommodationHandler)
		api.POST("/conversations/:id/booking/confirm", hb.ConfirmBookingHandler)
		api.POST("/conversations/:id/booking/cancel", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", utils.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterChatRoutes(r, hb)
}
