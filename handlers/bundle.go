package handlers

import (
	userRepoPkg "github.com/yihao03/Aistronaut/database/repository/user"
	"github.com/yihao03/Aistronaut/services/chat"
	"github.com/yihao03/Aistronaut/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc

	// Chat endpoints
	StartConversationHandler   gin.HandlerFunc
	SendMessageHandler         gin.HandlerFunc
	SelectFlightHandler        gin.HandlerFunc
	SelectTripHandler          gin.HandlerFunc
	SelectAccommodationHandler gin.HandlerFunc
	ConfirmBookingHandler      gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	RetryMessageHandler        gin.HandlerFunc
	ListConversationsHandler   gin.HandlerFunc
	GetConversationHandler     gin.HandlerFunc
	DeleteConversationHandler  gin.HandlerFunc
	SwitchConversationHandler  gin.HandlerFunc
	CurrentConversationHandler gin.HandlerFunc
}

// NewHandlerBundle wires services into their handlers.
func NewHandlerBundle(userRepo userRepoPkg.UserRepository, userSvc user.UserService, chatSvc chat.ChatService) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,

		RegisterUserHandler:     RegisterUserHandler(userSvc),
		AuthenticateUserHandler: AuthenticateUserHandler(userSvc),
		UpdateFCMTokenHandler:   UpdateFCMTokenHandler(userSvc),

		StartConversationHandler:   StartConversationHandler(chatSvc),
		SendMessageHandler:         SendMessageHandler(chatSvc),
		SelectFlightHandler:        SelectFlightHandler(chatSvc),
		SelectTripHandler:          SelectTripHandler(chatSvc),
		SelectAccommodationHandler: SelectAccommodationHandler(chatSvc),
		ConfirmBookingHandler:      ConfirmBookingHandler(chatSvc),
		CancelBookingHandler:       CancelBookingHandler(chatSvc),
		RetryMessageHandler:        RetryMessageHandler(chatSvc),
		ListConversationsHandler:   ListConversationsHandler(chatSvc),
		GetConversationHandler:     GetConversationHandler(chatSvc),
		DeleteConversationHandler:  DeleteConversationHandler(chatSvc),
		SwitchConversationHandler:  SwitchConversationHandler(chatSvc),
		CurrentConversationHandler: CurrentConversationHandler(chatSvc),
	}
}
