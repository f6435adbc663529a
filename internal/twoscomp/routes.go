package twoscomp

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the two's-complement endpoints on the router.
func RegisterRoutes(r chi.Router) {
	r.Route("/twos-complement", func(r chi.Router) {
		r.Post("/", HandleEncode)
		r.Post("/decode", HandleDecode)
	})
}
