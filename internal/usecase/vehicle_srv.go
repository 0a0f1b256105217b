package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleService interface {
	// Public endpoints
	ListVehicles(ctx context.Context, query *request.VehicleListQuery) ([]response.VehicleResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)

	// Admin endpoints
	CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context, query *request.VehicleListQuery) ([]response.VehicleResponse, error) {
	filter := repository.VehicleFilter{
		Category:     query.Category,
		Transmission: query.Transmission,
		Available:    query.Available,
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
		Sort:         query.Sort,
	}

	vehicles, err := s.repo.Vehicle.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list vehicles", zap.Error(err))
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	vehicleResponses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		vehicleResponses[i] = response.VehicleToResponse(vehicle)
	}

	s.log.Info("Vehicles retrieved", zap.Int("count", len(vehicles)))

	return vehicleResponses, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID format %s", ErrValidation, vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	mileage := "N/A"
	if req.Mileage != nil {
		mileage = *req.Mileage
	}
	var rating float64
	if req.Rating != nil {
		rating = *req.Rating
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Category:     entity.VehicleCategory(req.Category),
		Transmission: entity.Transmission(req.Transmission),
		FuelType:     entity.FuelType(req.FuelType),
		Seats:        req.Seats,
		PricePerDay:  req.PricePerDay,
		Available:    available,
		ImageURL:     req.ImageURL,
		Features:     req.Features,
		Description:  req.Description,
		Mileage:      mileage,
		Rating:       rating,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("name", vehicle.Name),
	)

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID format %s", ErrValidation, vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}

	applyVehicleUpdate(vehicle, req)
	vehicle.UpdatedAt = time.Now()

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		s.log.Error("Failed to update vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	s.log.Info("Vehicle updated", zap.String("vehicle_id", vehicleID))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return fmt.Errorf("%w: invalid vehicle ID format %s", ErrValidation, vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}

	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.log.Info("Vehicle deleted",
		zap.String("vehicle_id", vehicleID),
		zap.String("name", vehicle.Name),
	)

	return nil
}

func applyVehicleUpdate(vehicle *entity.Vehicle, req *request.VehicleUpdateRequest) {
	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Category != nil {
		vehicle.Category = entity.VehicleCategory(*req.Category)
	}
	if req.Transmission != nil {
		vehicle.Transmission = entity.Transmission(*req.Transmission)
	}
	if req.FuelType != nil {
		vehicle.FuelType = entity.FuelType(*req.FuelType)
	}
	if req.Seats != nil {
		vehicle.Seats = *req.Seats
	}
	if req.PricePerDay != nil {
		vehicle.PricePerDay = *req.PricePerDay
	}
	if req.Available != nil {
		vehicle.Available = *req.Available
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = *req.ImageURL
	}
	if req.Features != nil {
		vehicle.Features = req.Features
	}
	if req.Description != nil {
		vehicle.Description = req.Description
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.Rating != nil {
		vehicle.Rating = *req.Rating
	}
}
