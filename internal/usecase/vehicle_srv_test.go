package usecase

import (
	"context"
	"testing"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVehicleTestService(t *testing.T) (VehicleService, *fakeVehicleRepo) {
	t.Helper()

	vehicles := newFakeVehicleRepo()
	repo := &repository.Repository{Vehicle: vehicles}

	return NewVehicleService(repo, zap.NewNop()), vehicles
}

func validVehicleRequest() *request.VehicleRequest {
	return &request.VehicleRequest{
		Name:         "BMW X5",
		Brand:        "BMW",
		Model:        "X5",
		Year:         2024,
		Category:     "SUV",
		Transmission: "Automatic",
		FuelType:     "Petrol",
		Seats:        5,
		PricePerDay:  120,
		ImageURL:     "https://example.com/x5.jpg",
		Features:     []string{"GPS", "Leather Seats"},
	}
}

func TestCreateVehicleDefaults(t *testing.T) {
	service, _ := newVehicleTestService(t)

	result, err := service.CreateVehicle(context.Background(), validVehicleRequest())
	require.NoError(t, err)

	assert.True(t, result.Available, "new vehicles default to available")
	assert.Equal(t, "N/A", result.Mileage)
	assert.Equal(t, 0.0, result.Rating)
	assert.Equal(t, "SUV", result.Category)
}

func TestCreateVehicleValidation(t *testing.T) {
	service, _ := newVehicleTestService(t)

	req := validVehicleRequest()
	req.Category = "Hovercraft"

	_, err := service.CreateVehicle(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateVehiclePartial(t *testing.T) {
	service, _ := newVehicleTestService(t)

	created, err := service.CreateVehicle(context.Background(), validVehicleRequest())
	require.NoError(t, err)

	price := 95.0
	available := false
	updated, err := service.UpdateVehicle(context.Background(), created.ID, &request.VehicleUpdateRequest{
		PricePerDay: &price,
		Available:   &available,
	})
	require.NoError(t, err)

	assert.Equal(t, 95.0, updated.PricePerDay)
	assert.False(t, updated.Available)
	// untouched fields survive
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Seats, updated.Seats)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	service, _ := newVehicleTestService(t)

	err := service.DeleteVehicle(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVehiclesAppliesFilter(t *testing.T) {
	service, _ := newVehicleTestService(t)

	_, err := service.CreateVehicle(context.Background(), validVehicleRequest())
	require.NoError(t, err)

	cheap := validVehicleRequest()
	cheap.Name = "Kia Rio"
	cheap.Category = "Economy"
	cheap.PricePerDay = 35
	_, err = service.CreateVehicle(context.Background(), cheap)
	require.NoError(t, err)

	maxPrice := 50.0
	result, err := service.ListVehicles(context.Background(), &request.VehicleListQuery{MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Kia Rio", result[0].Name)
}
