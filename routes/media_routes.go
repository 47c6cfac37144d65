package routes

import (
	"squadup_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up presigned-URL routes for chat attachments under /api/media
func RegisterMediaRoutes(r *mux.Router) {
	mediaRouter := r.PathPrefix("/api/media").Subrouter()

	mediaRouter.HandleFunc("/upload-url", controllers.GenerateUploadURLHandler).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controllers.GenerateReadURLHandler).Methods("GET")
}
