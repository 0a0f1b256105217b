package wire

import (
	"net/http"

	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/internal/usecase"
	"car-rental/pkg/middleware"
	"car-rental/pkg/payment"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles repositories, services, handlers and routes into the
// HTTP application.
func Wiring(repo *repository.Repository, processor payment.Processor, config *utils.Config, log *zap.Logger) *App {
	service := usecase.NewService(repo, processor, config, log)
	handler := adaptor.NewHandler(service, log)

	router := chi.NewRouter()

	router.Use(middleware.Recover(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(config.App.ClientURL))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	authRequired := middleware.AuthSession(repo.Session, repo.User, log)
	adminRequired := middleware.Admin(log)

	router.Route("/api", func(api chi.Router) {
		AuthRoutes(api, handler.Auth, authRequired)
		VehicleRoutes(api, handler.Vehicle, authRequired, adminRequired)
		BookingRoutes(api, handler.Booking, authRequired, adminRequired)
		PaymentRoutes(api, handler.Payment, authRequired, config.Payment)
		ContactRoutes(api, handler.Contact, authRequired, adminRequired)
	})

	return &App{Router: router}
}
