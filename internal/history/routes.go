package history

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the history endpoints on the router.
func RegisterRoutes(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", List)
		r.Delete("/", Clear)
		r.Get("/export", Export)
	})
}
