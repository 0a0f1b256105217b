package middleware

import (
	"net/http"
	"time"

	"car-rental/pkg/utils"

	"github.com/go-chi/httprate"
)

// PaymentRateLimit caps payment intent creation per client IP. The exact
// limit is a deployment parameter, not a business invariant.
func PaymentRateLimit(config utils.PaymentConfig) func(http.Handler) http.Handler {
	window := time.Duration(config.RateWindowMinutes) * time.Minute

	return httprate.Limit(
		config.RateLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseTooManyRequests(w, "Too many payment requests, please try again later")
		}),
	)
}
