package handlers

import (
	"net/http"

	"github.com/yihao03/Aistronaut/middleware"
	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondChatError maps typed chat failures to HTTP statuses.
func respondChatError(c *gin.Context, err error) {
	if ce, ok := err.(*chat.ChatError); ok {
		switch ce.Code {
		case "chatBusy":
			c.JSON(http.StatusConflict, gin.H{"error": ce.Message})
		case "notAuthenticated":
			c.JSON(http.StatusUnauthorized, gin.H{"error": ce.Message})
		case "conversationNotFound":
			c.JSON(http.StatusNotFound, gin.H{"error": ce.Message})
		case "noRetryTarget":
			c.JSON(http.StatusBadRequest, gin.H{"error": ce.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": ce.Message})
		}
		return
	}
	getLogger(c).Error("Chat operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

// StartConversationHandler creates a conversation and issues the welcome message.
func StartConversationHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		conv, err := svc.StartConversation(c.Request.Context(), identity)
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusCreated, conv)
	}
}

// SendMessageHandler submits free text to a conversation.
func SendMessageHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)

		var req struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		conv, err := svc.SendMessage(c.Request.Context(), identity, c.Param("id"), req.Content)
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// SelectFlightHandler records a flight pick.
func SelectFlightHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)

		var flight models.FlightOption
		if err := c.ShouldBindJSON(&flight); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		conv, err := svc.SelectFlight(c.Request.Context(), identity, c.Param("id"), flight)
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// SelectTripHandler records a trip pick and returns accommodation options.
func SelectTripHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)

		var trip models.TripOption
		if err := c.ShouldBindJSON(&trip); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		conv, err := svc.SelectTrip(c.Request.Context(), identity, c.Param("id"), trip)
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// SelectAccommodationHandler records a stay pick and returns the booking
// summary. The optional trip field covers clients whose held trip state was
// lost between steps.
func SelectAccommodationHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)

		var req struct {
			Accommodation models.AccommodationOption `json:"accommodation" binding:"required"`
			Trip          *models.TripOption         `json:"trip,omitempty"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		conv, err := svc.SelectAccommodation(c.Request.Context(), identity, c.Param("id"), req.Accommodation, req.Trip)
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// ConfirmBookingHandler runs the booking confirmation step.
func ConfirmBookingHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		conv, err := svc.ConfirmBooking(c.Request.Context(), identity, c.Param("id"))
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// CancelBookingHandler closes the pending booking attempt.
func CancelBookingHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		conv, err := svc.CancelBooking(c.Request.Context(), identity, c.Param("id"))
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// RetryMessageHandler replays the most recent user message.
func RetryMessageHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		conv, err := svc.RetryLastMessage(c.Request.Context(), identity, c.Param("id"))
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}
