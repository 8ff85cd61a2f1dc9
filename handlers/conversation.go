package handlers

import (
	"net/http"

	"github.com/yihao03/Aistronaut/middleware"
	"github.com/yihao03/Aistronaut/services/chat"

	"github.com/gin-gonic/gin"
)

// ListConversationsHandler returns conversation headers, most recent first.
func ListConversationsHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		infos, err := svc.ListConversations(c.Request.Context())
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"conversations": infos})
	}
}

// GetConversationHandler returns a full transcript.
func GetConversationHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		conv, err := svc.GetConversation(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// DeleteConversationHandler removes a transcript and its session state.
func DeleteConversationHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		if err := svc.DeleteConversation(c.Request.Context(), identity, c.Param("id")); err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// SwitchConversationHandler points the caller's current conversation at :id.
func SwitchConversationHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		conv, err := svc.SwitchConversation(c.Request.Context(), identity, c.Param("id"))
		if err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}

// CurrentConversationHandler returns the caller's current conversation, or
// 204 when none is set.
func CurrentConversationHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		conv, err := svc.CurrentConversation(c.Request.Context(), identity)
		if err != nil {
			respondChatError(c, err)
			return
		}
		if conv == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, conv)
	}
}
