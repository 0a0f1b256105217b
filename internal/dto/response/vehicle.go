package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type VehicleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Category     string    `json:"category"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuel_type"`
	Seats        int       `json:"seats"`
	PricePerDay  float64   `json:"price_per_day"`
	Available    bool      `json:"available"`
	ImageURL     string    `json:"image"`
	Features     []string  `json:"features"`
	Description  *string   `json:"description,omitempty"`
	Mileage      string    `json:"mileage"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// VehicleSummary is the denormalized slice of a vehicle attached to
// bookings for display.
type VehicleSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	ImageURL    string  `json:"image"`
	PricePerDay float64 `json:"price_per_day"`
}

func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	features := vehicle.Features
	if features == nil {
		features = []string{}
	}

	return VehicleResponse{
		ID:           vehicle.ID.String(),
		Name:         vehicle.Name,
		Brand:        vehicle.Brand,
		Model:        vehicle.Model,
		Year:         vehicle.Year,
		Category:     string(vehicle.Category),
		Transmission: string(vehicle.Transmission),
		FuelType:     string(vehicle.FuelType),
		Seats:        vehicle.Seats,
		PricePerDay:  vehicle.PricePerDay,
		Available:    vehicle.Available,
		ImageURL:     vehicle.ImageURL,
		Features:     features,
		Description:  vehicle.Description,
		Mileage:      vehicle.Mileage,
		Rating:       vehicle.Rating,
		CreatedAt:    vehicle.CreatedAt,
	}
}

func VehicleToSummary(vehicle *entity.Vehicle) *VehicleSummary {
	if vehicle == nil {
		return nil
	}

	return &VehicleSummary{
		ID:          vehicle.ID.String(),
		Name:        vehicle.Name,
		Brand:       vehicle.Brand,
		Model:       vehicle.Model,
		ImageURL:    vehicle.ImageURL,
		PricePerDay: vehicle.PricePerDay,
	}
}
