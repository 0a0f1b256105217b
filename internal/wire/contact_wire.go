package wire

import (
	"net/http"

	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func ContactRoutes(router chi.Router, handler *adaptor.ContactHandler, authRequired, adminRequired func(http.Handler) http.Handler) {
	router.Route("/contact", func(r chi.Router) {
		r.Post("/", handler.Submit)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Use(adminRequired)
			r.Get("/", handler.List)
			r.Patch("/{contactId}", handler.UpdateStatus)
		})
	})
}
