package usecase

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingTestService(t *testing.T) (BookingService, *fakeVehicleRepo, *fakeBookingRepo) {
	t.Helper()

	vehicles := newFakeVehicleRepo()
	bookings := newFakeBookingRepo()
	repo := &repository.Repository{
		Vehicle: vehicles,
		Booking: bookings,
	}

	return NewBookingService(repo, zap.NewNop()), vehicles, bookings
}

func seedVehicle(repo *fakeVehicleRepo, pricePerDay float64, available bool) *entity.Vehicle {
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Toyota Corolla",
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2023,
		Category:     entity.CategorySedan,
		Transmission: entity.TransmissionAutomatic,
		FuelType:     entity.FuelPetrol,
		Seats:        5,
		PricePerDay:  pricePerDay,
		Available:    available,
		ImageURL:     "https://example.com/corolla.jpg",
		Mileage:      "Unlimited",
	}
	repo.vehicles[vehicle.ID] = vehicle
	return vehicle
}

func validBookingRequest(vehicleID uuid.UUID) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VehicleID:    vehicleID.String(),
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "555-123-4567",
		PickupDate:   "2026-09-01",
		ReturnDate:   "2026-09-04",
	}
}

func TestCreateBookingPricesFromStoredRate(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 65, true)

	result, err := service.CreateBooking(context.Background(), validBookingRequest(vehicle.ID))
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalDays)
	assert.Equal(t, 195.0, result.TotalPrice)
	assert.Equal(t, entity.BookingStatusPending, result.Status)
	assert.Equal(t, entity.PaymentStateUnpaid, result.PaymentStatus)
	assert.NotEmpty(t, result.OrderID)
	require.NotNil(t, result.Vehicle)
	assert.Equal(t, vehicle.Name, result.Vehicle.Name)

	// Later rate changes do not reprice existing bookings
	vehicle.PricePerDay = 90
	fetched, err := service.GetBookingByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, 195.0, fetched.TotalPrice)
}

func TestCreateBookingRejectsSameDayReturn(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 65, true)

	req := validBookingRequest(vehicle.ID)
	req.ReturnDate = req.PickupDate

	_, err := service.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBookingRejectsInvertedRange(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 65, true)

	req := validBookingRequest(vehicle.ID)
	req.PickupDate = "2026-09-04"
	req.ReturnDate = "2026-09-01"

	_, err := service.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	service, _, _ := newBookingTestService(t)

	_, err := service.CreateBooking(context.Background(), validBookingRequest(uuid.New()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingUnavailableVehicle(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 65, false)

	_, err := service.CreateBooking(context.Background(), validBookingRequest(vehicle.ID))
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestCreateBookingValidation(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 65, true)

	req := validBookingRequest(vehicle.ID)
	req.Email = "not-an-email"

	_, err := service.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 80, true)

	created, err := service.CreateBooking(context.Background(), validBookingRequest(vehicle.ID))
	require.NoError(t, err)

	// pending cannot jump straight to completed
	_, err = service.UpdateStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	confirmed, err := service.UpdateStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	completed, err := service.UpdateStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, completed.Status)

	// completed is terminal
	_, err = service.UpdateStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelBookingIsIdempotent(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 80, true)

	created, err := service.CreateBooking(context.Background(), validBookingRequest(vehicle.ID))
	require.NoError(t, err)

	first, err := service.CancelBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, first.Status)

	second, err := service.CancelBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, second.Status)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	service, vehicles, bookings := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 80, true)

	created, err := service.CreateBooking(context.Background(), validBookingRequest(vehicle.ID))
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	bookings.bookings[id].Status = entity.BookingStatusCompleted

	_, err = service.CancelBooking(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListBookingsFiltersByEmailAndStatus(t *testing.T) {
	service, vehicles, _ := newBookingTestService(t)
	vehicle := seedVehicle(vehicles, 50, true)

	first, err := service.CreateBooking(context.Background(), validBookingRequest(vehicle.ID))
	require.NoError(t, err)

	other := validBookingRequest(vehicle.ID)
	other.Email = "bob@example.com"
	_, err = service.CreateBooking(context.Background(), other)
	require.NoError(t, err)

	email := "jane@example.com"
	result, total, err := service.ListBookings(context.Background(), &request.ListBookingsQuery{
		Email:   &email,
		Page:    1,
		PerPage: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, result, 1)
	assert.Equal(t, first.ID, result[0].ID)

	bad := "teleported"
	_, _, err = service.ListBookings(context.Background(), &request.ListBookingsQuery{
		Status:  &bad,
		Page:    1,
		PerPage: 20,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetBookingByIDNotFound(t *testing.T) {
	service, _, _ := newBookingTestService(t)

	_, err := service.GetBookingByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetBookingByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)
}
