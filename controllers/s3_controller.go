package controllers

import (
	"encoding/json"
	"net/http"

	"squadup_server/services"
)

// GenerateUploadURLHandler issues a presigned PUT URL for a chat attachment
func GenerateUploadURLHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.FileName == "" || request.FileType == "" {
		writeError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	url, key, err := services.GenerateUploadURL(request.FileName, request.FileType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// GenerateReadURLHandler issues a presigned GET URL for a chat attachment
func GenerateReadURLHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	url, err := services.GenerateReadURL(key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate read URL")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
