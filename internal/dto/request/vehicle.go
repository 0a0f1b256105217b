package request

type VehicleRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Brand        string   `json:"brand" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int      `json:"year" validate:"required,gte=1900,lte=2100"`
	Category     string   `json:"category" validate:"required,oneof=Economy Compact Sedan SUV Luxury Sports Van"`
	Transmission string   `json:"transmission" validate:"required,oneof=Automatic Manual"`
	FuelType     string   `json:"fuel_type" validate:"required,oneof=Petrol Diesel Electric Hybrid"`
	Seats        int      `json:"seats" validate:"required,gte=2,lte=15"`
	PricePerDay  float64  `json:"price_per_day" validate:"gte=0"`
	Available    *bool    `json:"available,omitempty"`
	ImageURL     string   `json:"image" validate:"required,url"`
	Features     []string `json:"features,omitempty"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Mileage      *string  `json:"mileage,omitempty"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

type VehicleUpdateRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Category     *string  `json:"category,omitempty" validate:"omitempty,oneof=Economy Compact Sedan SUV Luxury Sports Van"`
	Transmission *string  `json:"transmission,omitempty" validate:"omitempty,oneof=Automatic Manual"`
	FuelType     *string  `json:"fuel_type,omitempty" validate:"omitempty,oneof=Petrol Diesel Electric Hybrid"`
	Seats        *int     `json:"seats,omitempty" validate:"omitempty,gte=2,lte=15"`
	PricePerDay  *float64 `json:"price_per_day,omitempty" validate:"omitempty,gte=0"`
	Available    *bool    `json:"available,omitempty"`
	ImageURL     *string  `json:"image,omitempty" validate:"omitempty,url"`
	Features     []string `json:"features,omitempty"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Mileage      *string  `json:"mileage,omitempty"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// VehicleListQuery is parsed from query parameters, not a JSON body.
type VehicleListQuery struct {
	Category     *string
	Transmission *string
	Available    *bool
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
}
