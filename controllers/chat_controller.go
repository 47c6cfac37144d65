package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"squadup_server/services"
)

// ChatController handles HTTP requests for conversations and messages
type ChatController struct {
	ChatService         *services.ChatService
	ConversationService *services.ConversationService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, conversationService *services.ConversationService) *ChatController {
	return &ChatController{ChatService: chatService, ConversationService: conversationService}
}

// ListConversations - fetch every conversation a user participates in
func (c *ChatController) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	conversations, err := c.ConversationService.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"conversations": conversations})
}

// GetOrCreateConversation - idempotently resolve the conversation for a pair
func (c *ChatController) GetOrCreateConversation(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserIDA string `json:"userIdA"`
		UserIDB string `json:"userIdB"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	conv, created, err := c.ConversationService.GetOrCreate(r.Context(), request.UserIDA, request.UserIDB)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]interface{}{"conversation": conv, "isNew": created})
}

// SendMessage - append a message to a conversation timeline
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input services.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := c.ChatService.SendMessage(r.Context(), input)
	if err != nil {
		// A failed send must be visible to the caller.
		log.Printf("❌ Failed to send message in %s: %v", input.ConversationID, err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// GetMessages - fetch a conversation's timeline ascending by timestamp.
// Pass grouped=true to receive contiguous same-sender runs.
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		writeError(w, http.StatusBadRequest, "conversationId is required")
		return
	}

	messages, err := c.ChatService.ListMessages(r.Context(), conversationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.URL.Query().Get("grouped") == "true" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"groups": services.GroupBySender(messages)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// MarkMessagesAsRead - fire-and-forget bulk sent->read transition. The
// caller gets a 202 immediately; a failure is logged, not surfaced.
func (c *ChatController) MarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		ReaderID       string `json:"readerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ConversationID == "" || request.ReaderID == "" {
		writeError(w, http.StatusBadRequest, "conversationId and readerId are required")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := c.ChatService.MarkRead(ctx, request.ConversationID, request.ReaderID); err != nil {
			log.Printf("⚠️ mark-as-read failed for %s: %v", request.ConversationID, err)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
