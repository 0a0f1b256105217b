package wire

import (
	"net/http"

	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func BookingRoutes(router chi.Router, handler *adaptor.BookingHandler, authRequired, adminRequired func(http.Handler) http.Handler) {
	router.Route("/bookings", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{bookingId}", handler.GetByID)
		r.Delete("/{bookingId}", handler.Cancel)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Use(adminRequired)
			r.Patch("/{bookingId}", handler.UpdateStatus)
		})
	})
}
