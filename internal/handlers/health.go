package handlers

import (
	"encoding/json"
	"net/http"
)

// Health answers liveness probes; no auth, no dependencies.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"message": "Backend is running!",
	})
}
