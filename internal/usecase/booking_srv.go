package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, query *request.ListBookingsQuery) ([]response.BookingResponse, int64, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// Admin endpoints
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

const dateLayout = "2006-01-02"

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID format %s", ErrValidation, req.VehicleID)
	}

	pickupDate, err := time.Parse(dateLayout, req.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed pickup date %s", ErrInvalidDateRange, req.PickupDate)
	}

	returnDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed return date %s", ErrInvalidDateRange, req.ReturnDate)
	}

	// Return date must be strictly after pickup date
	totalDays := totalRentalDays(pickupDate, returnDate)
	if totalDays < 1 {
		return nil, fmt.Errorf("%w: return date must be after pickup date", ErrInvalidDateRange)
	}

	// Vehicle must exist and currently be marked available
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		s.log.Error("Failed to check vehicle", zap.Error(err), zap.String("vehicle_id", req.VehicleID))
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, req.VehicleID)
	}
	if !vehicle.Available {
		return nil, fmt.Errorf("%w: %s", ErrVehicleUnavailable, vehicle.Name)
	}

	// Price is snapshotted at booking time and never recomputed
	totalPrice := float64(totalDays) * vehicle.PricePerDay

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       utils.GenerateOrderID(),
		VehicleID:     vehicleID,
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		PickupDate:    pickupDate,
		ReturnDate:    returnDate,
		TotalDays:     totalDays,
		TotalPrice:    totalPrice,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStateUnpaid,
		Notes:         req.Notes,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("vehicle_id", req.VehicleID),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("vehicle_id", req.VehicleID),
		zap.Int("total_days", totalDays),
		zap.Float64("total_price", totalPrice),
	)

	resp := response.BookingToResponse(booking, vehicle)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, query *request.ListBookingsQuery) ([]response.BookingResponse, int64, error) {
	filter := repository.BookingFilter{
		Email:  query.Email,
		Status: query.Status,
		Limit:  query.PerPage,
		Offset: utils.CalculateOffset(query.Page, query.PerPage),
	}

	if query.Status != nil && !entity.BookingStatus(*query.Status).Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %s", ErrValidation, *query.Status)
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Stringp("email", query.Email),
			zap.Stringp("status", query.Status),
		)
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
		bookingResponses[i] = response.BookingToResponse(booking, vehicle)
	}

	s.log.Info("Bookings retrieved",
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
	)

	return bookingResponses, total, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)

	resp := response.BookingToResponse(booking, vehicle)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	target := entity.BookingStatus(req.Status)
	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, target); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)

	booking.Status = target
	vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)

	resp := response.BookingToResponse(booking, vehicle)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	// Cancelling an already-cancelled booking succeeds silently
	if booking.Status != entity.BookingStatusCancelled {
		if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
			return nil, fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidTransition, booking.Status)
		}

		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
			s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
			return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
		}

		booking.Status = entity.BookingStatusCancelled

		s.log.Info("Booking cancelled",
			zap.String("booking_id", bookingID),
			zap.String("order_id", booking.OrderID),
		)
	}

	vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)

	resp := response.BookingToResponse(booking, vehicle)
	return &resp, nil
}

// totalRentalDays is the ceiling of the date difference in whole days.
// A same-day or inverted range yields 0 and is rejected by the caller.
func totalRentalDays(pickup, ret time.Time) int {
	diff := ret.Sub(pickup).Hours() / 24
	return int(math.Ceil(diff))
}
