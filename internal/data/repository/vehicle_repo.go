package repository

import (
	"context"
	"fmt"
	"strings"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// VehicleFilter narrows catalog listings. Nil fields are not applied.
type VehicleFilter struct {
	Category     *string
	Transmission *string
	Available    *bool
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string // price-asc, price-desc, name; default newest first
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(ctx context.Context, filter VehicleFilter) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

const vehicleColumns = `id, name, brand, model, year, category, transmission, fuel_type, seats,
	price_per_day, available, image_url, features, description, mileage, rating, created_at, updated_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Category,
		&vehicle.Transmission,
		&vehicle.FuelType,
		&vehicle.Seats,
		&vehicle.PricePerDay,
		&vehicle.Available,
		&vehicle.ImageURL,
		&vehicle.Features,
		&vehicle.Description,
		&vehicle.Mileage,
		&vehicle.Rating,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, name, brand, model, year, category, transmission, fuel_type, seats,
			price_per_day, available, image_url, features, description, mileage, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Category,
		vehicle.Transmission,
		vehicle.FuelType,
		vehicle.Seats,
		vehicle.PricePerDay,
		vehicle.Available,
		vehicle.ImageURL,
		vehicle.Features,
		vehicle.Description,
		vehicle.Mileage,
		vehicle.Rating,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("name", vehicle.Name),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.Name, err)
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) FindAll(ctx context.Context, filter VehicleFilter) ([]*entity.Vehicle, error) {
	var conditions []string
	var args []any

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Category != nil {
		addCondition("category = $%d", *filter.Category)
	}
	if filter.Transmission != nil {
		addCondition("transmission = $%d", *filter.Transmission)
	}
	if filter.Available != nil {
		addCondition("available = $%d", *filter.Available)
	}
	if filter.MinPrice != nil {
		addCondition("price_per_day >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		addCondition("price_per_day <= $%d", *filter.MaxPrice)
	}

	query := fmt.Sprintf(`SELECT %s FROM vehicles`, vehicleColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch filter.Sort {
	case "price-asc":
		query += " ORDER BY price_per_day ASC"
	case "price-desc":
		query += " ORDER BY price_per_day DESC"
	case "name":
		query += " ORDER BY name ASC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find vehicles", zap.Error(err))
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $2, brand = $3, model = $4, year = $5, category = $6, transmission = $7,
		    fuel_type = $8, seats = $9, price_per_day = $10, available = $11, image_url = $12,
		    features = $13, description = $14, mileage = $15, rating = $16, updated_at = $17
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Category,
		vehicle.Transmission,
		vehicle.FuelType,
		vehicle.Seats,
		vehicle.PricePerDay,
		vehicle.Available,
		vehicle.ImageURL,
		vehicle.Features,
		vehicle.Description,
		vehicle.Mileage,
		vehicle.Rating,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	r.log.Info("Vehicle deleted", zap.String("vehicle_id", id.String()))
	return nil
}
