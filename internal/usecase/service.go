package usecase

import (
	"car-rental/internal/data/repository"
	"car-rental/pkg/payment"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Vehicle VehicleService
	Booking BookingService
	Payment PaymentService
	Contact ContactService
}

func NewService(repo *repository.Repository, processor payment.Processor, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Vehicle: NewVehicleService(repo, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, processor, config, log),
		Contact: NewContactService(repo, log),
	}
}
