package routes

import (
	"squadup_server/controllers"
	"squadup_server/services"

	"github.com/gorilla/mux"
)

// RegisterPresenceRoutes sets up routes for presence under /api/presence
func RegisterPresenceRoutes(r *mux.Router, presenceService *services.PresenceService) {
	controller := controllers.NewPresenceController(presenceService)

	presenceRouter := r.PathPrefix("/api/presence").Subrouter()

	presenceRouter.HandleFunc("", controller.SetPresence).Methods("POST")
	presenceRouter.HandleFunc("", controller.GetPresence).Methods("GET")
}
