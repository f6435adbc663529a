package bitwise

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the bitwise endpoint on the router.
func RegisterRoutes(r chi.Router) {
	r.Post("/bitwise", Compute)
}
