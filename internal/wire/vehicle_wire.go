package wire

import (
	"net/http"

	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func VehicleRoutes(router chi.Router, handler *adaptor.VehicleHandler, authRequired, adminRequired func(http.Handler) http.Handler) {
	router.Route("/cars", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{vehicleId}", handler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Use(adminRequired)
			r.Post("/", handler.Create)
			r.Put("/{vehicleId}", handler.Update)
			r.Delete("/{vehicleId}", handler.Delete)
		})
	})
}
