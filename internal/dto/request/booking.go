package request

type CreateBookingRequest struct {
	VehicleID    string  `json:"vehicle_id" validate:"required,uuid4"`
	CustomerName string  `json:"customer_name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required,phone"`
	PickupDate   string  `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	ReturnDate   string  `json:"return_date" validate:"required,datetime=2006-01-02"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// ListBookingsQuery is parsed from query parameters, not a JSON body.
type ListBookingsQuery struct {
	Email   *string
	Status  *string
	Page    int
	PerPage int
}
