package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	OrderID         string               `json:"order_id"`
	VehicleID       string               `json:"vehicle_id"`
	Vehicle         *VehicleSummary      `json:"vehicle,omitempty"`
	CustomerName    string               `json:"customer_name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	PickupDate      string               `json:"pickup_date"`
	ReturnDate      string               `json:"return_date"`
	TotalDays       int                  `json:"total_days"`
	TotalPrice      float64              `json:"total_price"`
	Status          entity.BookingStatus `json:"status"`
	PaymentStatus   entity.PaymentState  `json:"payment_status"`
	PaymentIntentID *string              `json:"payment_intent_id,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, vehicle *entity.Vehicle) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		OrderID:         booking.OrderID,
		VehicleID:       booking.VehicleID.String(),
		Vehicle:         VehicleToSummary(vehicle),
		CustomerName:    booking.CustomerName,
		Email:           booking.Email,
		Phone:           booking.Phone,
		PickupDate:      booking.PickupDate.Format("2006-01-02"),
		ReturnDate:      booking.ReturnDate.Format("2006-01-02"),
		TotalDays:       booking.TotalDays,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		PaymentStatus:   booking.PaymentStatus,
		PaymentIntentID: booking.PaymentIntentID,
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
	}
}
