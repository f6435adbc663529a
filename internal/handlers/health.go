package handlers

import "net/http"

// Health handles GET /health with a bare liveness body.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
