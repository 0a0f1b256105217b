package wire

import (
	"net/http"

	"car-rental/internal/adaptor"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func PaymentRoutes(router chi.Router, handler *adaptor.PaymentHandler, authRequired func(http.Handler) http.Handler, paymentConfig utils.PaymentConfig) {
	router.Route("/payment", func(r chi.Router) {
		// The processor authenticates webhooks by signature, not session
		r.Post("/webhook", handler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)

			r.Group(func(r chi.Router) {
				r.Use(middleware.PaymentRateLimit(paymentConfig))
				r.Post("/create-intent", handler.CreateIntent)
			})

			r.Post("/confirm", handler.Confirm)
			r.Get("/user/history", handler.History)
			r.Get("/{paymentId}", handler.GetByID)
		})
	})
}
