package routes

import (
	"squadup_server/controllers"
	"squadup_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for matchmaking under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("/suggestions", controller.GetSuggestions).Methods("GET")
	matchRouter.HandleFunc("/decision", controller.RecordDecision).Methods("POST")
}
