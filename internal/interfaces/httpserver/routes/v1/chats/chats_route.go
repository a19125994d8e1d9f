package chats

import (
	"github.com/gin-gonic/gin"

	"agentsync/server/internal/interfaces/httpserver/handlers/chathandler"
)

type ChatsRoute struct {
	handler *chathandler.ChatHandler
}

func NewChatsRoute(handler *chathandler.ChatHandler) *ChatsRoute {
	return &ChatsRoute{handler: handler}
}

func (route *ChatsRoute) RegisterRouter(router gin.IRouter) {
	chats := router.Group("/chats")
	chats.POST("", route.handler.CreateChat)
	chats.GET("", route.handler.ListChats)
	chats.GET("/:chat_id", route.handler.GetChat)
	chats.POST("/:chat_id", route.handler.UpdateChat)
	chats.DELETE("/:chat_id", route.handler.DeleteChat)
	chats.GET("/:chat_id/messages", route.handler.ListMessages)
	chats.POST("/:chat_id/messages", route.handler.SendMessage)
}
