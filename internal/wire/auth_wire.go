package wire

import (
	"net/http"

	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(router chi.Router, handler *adaptor.AuthHandler, authRequired func(http.Handler) http.Handler) {
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Post("/logout", handler.Logout)
			r.Get("/me", handler.Me)
		})
	})
}
