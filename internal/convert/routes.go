package convert

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the conversion endpoints on the router.
func RegisterRoutes(r chi.Router) {
	r.Post("/convert", Convert)
	r.Get("/bases", Bases)
}
