package routes

import (
	"squadup_server/controllers"
	"squadup_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for conversation and message operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, conversationService *services.ConversationService) {
	// Initialize the controller with the ChatService
	controller := controllers.NewChatController(chatService, conversationService)

	// Create a subrouter for /api/chat
	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	// Define routes and their corresponding handlers
	chatRouter.HandleFunc("/conversations", controller.ListConversations).Methods("GET")
	chatRouter.HandleFunc("/conversations", controller.GetOrCreateConversation).Methods("POST")
	chatRouter.HandleFunc("/message", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/mark-as-read", controller.MarkMessagesAsRead).Methods("POST")
}
