package batch

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the batch endpoints on the router.
func RegisterRoutes(r chi.Router) {
	r.Route("/batch", func(r chi.Router) {
		r.Post("/convert", Convert)
	})
}
