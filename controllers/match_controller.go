package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"squadup_server/services"
)

// MatchController handles HTTP requests for matchmaking actions
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// GetSuggestions returns the ranked candidate deck for a user
func (mc *MatchController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	suggestions, err := mc.MatchService.GetSuggestions(r.Context(), userID, limit)
	if err != nil {
		log.Printf("❌ Failed to build suggestions for %s: %v", userID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}

// RecordDecision records a like or dislike and reports a reciprocal match
func (mc *MatchController) RecordDecision(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		TargetID string `json:"targetId"`
		Action   string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.UserID == "" || request.TargetID == "" || request.Action == "" {
		writeError(w, http.StatusBadRequest, "userId, targetId and action are required")
		return
	}

	result, err := mc.MatchService.RecordDecision(r.Context(), request.UserID, request.TargetID, request.Action)
	if err != nil {
		log.Printf("❌ Failed to record %s decision: %v", request.Action, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
