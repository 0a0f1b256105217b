package entity

type VehicleCategory string

const (
	CategoryEconomy VehicleCategory = "Economy"
	CategoryCompact VehicleCategory = "Compact"
	CategorySedan   VehicleCategory = "Sedan"
	CategorySUV     VehicleCategory = "SUV"
	CategoryLuxury  VehicleCategory = "Luxury"
	CategorySports  VehicleCategory = "Sports"
	CategoryVan     VehicleCategory = "Van"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

type Vehicle struct {
	Base
	Name         string          `db:"name"`
	Brand        string          `db:"brand"`
	Model        string          `db:"model"`
	Year         int             `db:"year"`
	Category     VehicleCategory `db:"category"`
	Transmission Transmission    `db:"transmission"`
	FuelType     FuelType        `db:"fuel_type"`
	Seats        int             `db:"seats"`
	PricePerDay  float64         `db:"price_per_day"`
	Available    bool            `db:"available"`
	ImageURL     string          `db:"image_url"`
	Features     []string        `db:"features"`
	Description  *string         `db:"description"`
	Mileage      string          `db:"mileage"`
	Rating       float64         `db:"rating"`
}
