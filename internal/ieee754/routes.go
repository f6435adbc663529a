package ieee754

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the floating-point endpoints on the router.
func RegisterRoutes(r chi.Router) {
	r.Route("/ieee754", func(r chi.Router) {
		r.Post("/encode", HandleEncode)
		r.Post("/decode", HandleDecode)
	})
}
