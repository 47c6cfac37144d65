package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"squadup_server/models"
	"squadup_server/services"
)

// PresenceController handles HTTP requests for presence state
type PresenceController struct {
	PresenceService *services.PresenceService
}

// NewPresenceController creates a new PresenceController instance
func NewPresenceController(service *services.PresenceService) *PresenceController {
	return &PresenceController{PresenceService: service}
}

// SetPresence records the caller's own online/offline state. Failures are
// logged and swallowed; presence is best-effort.
func (pc *PresenceController) SetPresence(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		IsOnline bool   `json:"isOnline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := pc.PresenceService.SetSelf(r.Context(), request.UserID, request.IsOnline); err != nil {
		log.Printf("⚠️ Failed to set presence for %s: %v", request.UserID, err)
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// GetPresence reports another user's presence, defaulting to offline.
func (pc *PresenceController) GetPresence(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	online := pc.PresenceService.Get(r.Context(), userID)
	writeJSON(w, http.StatusOK, models.PresenceRecord{UserID: userID, IsOnline: online})
}
